package client

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const servicePollInterval = time.Millisecond * 100

// WaitForService polls the service's listing resource until it answers,
// writing progress to output. Any HTTP response counts as "up"; only
// transport errors are retried, until the timeout elapses.
func (c *PetstoreClient) WaitForService(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to pet store service at %s", c.baseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(c.baseURL + "/pets")
		if err == nil {
			fmt.Fprintln(output)
			if resp.Body != nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
			fmt.Fprintf(output, "Service is responding (status %d)\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(servicePollInterval)
	}
}

package client

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForServiceReturnsOnceServiceResponds(t *testing.T) {
	// A non-2xx answer still proves the service is up
	server := httptest.NewServer(httphelpers.HandlerWithStatus(404))
	defer server.Close()

	c := NewPetstoreClient(server.URL, nil)
	var output bytes.Buffer
	require.NoError(t, c.WaitForService(time.Second, &output))
	assert.Contains(t, output.String(), "Connecting to pet store service")
	assert.Contains(t, output.String(), "status 404")
}

func TestWaitForServiceTimesOutWhenServiceNeverAnswers(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	c := NewPetstoreClient(url, nil)
	err := c.WaitForService(time.Millisecond*300, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

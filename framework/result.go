package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID is the full path of a test, from the top-level group down to the
// individual test name.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	skipColor = color.New(color.FgYellow)
)

// PrintResults writes a human-readable summary of a completed test run.
func PrintResults(w io.Writer, results Results) {
	var skipped int
	for _, t := range results.Tests {
		if t.Skipped {
			skipped++
		}
	}
	executed := len(results.Tests) - skipped

	if results.OK() {
		summary := fmt.Sprintf("All tests passed (%d executed", executed)
		if skipped > 0 {
			summary += fmt.Sprintf(", %d skipped", skipped)
		}
		passColor.Fprintln(w, summary+")")
		return
	}

	failColor.Fprintf(w, "%d of %d tests failed:\n", len(results.Failures), executed)
	for _, f := range results.Failures {
		failColor.Fprintf(w, "  [%s]\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
	if skipped > 0 {
		skipColor.Fprintf(w, "%d tests skipped\n", skipped)
	}
}

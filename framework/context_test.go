package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNames(results Results) []string {
	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	return names
}

func failureNames(results Results) []string {
	var names []string
	for _, r := range results.Failures {
		names = append(names, r.TestID.String())
	}
	return names
}

func TestRunRecordsPassingAndFailingTests(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) {
			c.Errorf("something went wrong: %d", 1)
		})
	})

	assert.Equal(t, []string{"passes", "fails"}, runNames(results))
	assert.Equal(t, []string{"fails"}, failureNames(results))
	assert.False(t, results.OK())

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "something went wrong: 1", results.Failures[0].Errors[0].Error())
}

func TestFailNowStopsTestImmediately(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails fast", func(c *Context) {
			c.Errorf("stop here")
			c.FailNow()
			reachedEnd = true
		})
		c.Run("still runs", func(c *Context) {})
	})

	assert.False(t, reachedEnd)
	assert.Equal(t, []string{"fails fast"}, failureNames(results))
	assert.Equal(t, []string{"fails fast", "still runs"}, runNames(results))
}

func TestFailNowWithoutErrorProducesAFailureMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails silently", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no failure message")
}

func TestUnexpectedPanicBecomesAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("boom")
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic")
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable")
		})
		c.Run("runs", func(c *Context) {})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 2)
	assert.True(t, results.Tests[0].Skipped)
	assert.False(t, results.Tests[1].Skipped)
}

func TestSubtestIDsIncludeParentPath(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner 1", func(c *Context) {})
			c.Run("inner 2", func(c *Context) {})
		})
	})

	assert.Equal(t, []string{"outer/inner 1", "outer/inner 2", "outer"}, runNames(results))
}

func TestSubtestFailureDoesNotFailParent(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {
				c.Errorf("inner failure")
			})
		})
	})

	assert.Equal(t, []string{"outer/inner"}, failureNames(results))
}

func TestFilterExcludesTestsFromTheRun(t *testing.T) {
	ran := false
	filter := func(id TestID) bool { return id.String() != "excluded" }
	results := Run(filter, nil, func(c *Context) {
		c.Run("excluded", func(c *Context) { ran = true })
		c.Run("included", func(c *Context) {})
	})

	assert.False(t, ran)
	assert.Equal(t, []string{"included"}, runNames(results))
}

type capturedEvent struct {
	kind string
	id   TestID
}

type recordingTestLogger struct {
	events []capturedEvent
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.events = append(l.events, capturedEvent{"started", id})
}
func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.events = append(l.events, capturedEvent{"error", id})
}
func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.events = append(l.events, capturedEvent{"finished", id})
}
func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.events = append(l.events, capturedEvent{"skipped", id})
}

func TestTestLoggerReceivesProgressEvents(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) { c.Errorf("oops") })
		c.Run("c", func(c *Context) { c.Skip() })
	})

	var kinds []string
	for _, e := range logger.events {
		kinds = append(kinds, e.kind+" "+e.id.String())
	}
	assert.Equal(t, []string{
		"started a", "finished a",
		"started b", "error b", "finished b",
		"started c", "skipped c",
	}, kinds)
}

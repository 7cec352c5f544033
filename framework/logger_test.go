package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerReplaysMessagesInOrder(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("first %d", 1)
	logger.Printf("second %d", 2)

	output := logger.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "first 1", output[0].Message)
	assert.Equal(t, "second 2", output[1].Message)

	var buf bytes.Buffer
	output.Dump(&buf, "  DEBUG ")
	assert.Contains(t, buf.String(), "  DEBUG [")
	assert.Contains(t, buf.String(), "first 1")
	assert.Contains(t, buf.String(), "second 2")
}

func TestWriterLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	logger := WriterLogger(&buf)
	logger.Printf("hello %s", "world")
	assert.Equal(t, "hello world\n", buf.String())
}

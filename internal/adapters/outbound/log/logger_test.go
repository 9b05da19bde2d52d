package log

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "duoread ")

	logger.Print("RunTool: started")
	assert.Contains(t, buf.String(), "duoread RunTool: started\n")
}

func TestInitLogger_Initialize(t *testing.T) {
	_, err := InitLogger{Prefix: "test "}.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, "test ", logger.Prefix())
}

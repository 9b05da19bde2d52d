package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	dataPrefix   = "data: "
	doneMarker   = "[DONE]"
	errorPrefix  = "Error:"
	maxEventSize = 1024 * 1024
)

// StreamErr is an error reported by the backend inside the stream.
type StreamErr struct {
	Message string
}

func (e *StreamErr) Error() string { return e.Message }

// decodeStream reads "data: " lines from r until [DONE] or EOF, forwarding every
// non-empty payload to onChunk, and returns the accumulated text.
// Lines split across reads are reassembled by the scanner.
func decodeStream(r io.Reader, onChunk func(string) error) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var full strings.Builder
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}
		content := strings.TrimPrefix(line, dataPrefix)
		switch {
		case content == doneMarker:
			return full.String(), nil
		case strings.HasPrefix(content, errorPrefix):
			return full.String(), &StreamErr{Message: content}
		case content == "":
			continue
		}
		full.WriteString(content)
		if err := onChunk(content); err != nil {
			return full.String(), err
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return full.String(), fmt.Errorf("read stream: %w", err)
	}
	return full.String(), nil
}

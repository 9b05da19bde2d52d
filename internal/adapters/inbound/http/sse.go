package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
)

// eventStream writes tool events as server-sent events.
// Headers are sent with the first event so that errors raised before it can still be answered as JSON.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

func newEventStream(w http.ResponseWriter) (*eventStream, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	return &eventStream{w: w, flusher: flusher}, true
}

// send implements domain.ToolEventCallback.
func (s *eventStream) send(eventType domain.ToolEventType, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if !s.started {
		s.w.Header().Set("Content-Type", "text/event-stream")
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.Header().Set("Connection", "keep-alive")
		s.w.Header().Set("X-Content-Type-Options", "nosniff")
		s.w.WriteHeader(http.StatusOK)
		s.started = true
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", eventType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", string(dataBytes)); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

package domain

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrStaleStreamingTask is returned when a task was replaced by a newer Start.
	ErrStaleStreamingTask = errors.New("streaming task was superseded")
	// ErrStreamingTaskClosed is returned when a task is used after Complete or Fail.
	ErrStreamingTaskClosed = errors.New("streaming task is closed")
)

// StreamSnapshot is the live state published to the observer.
type StreamSnapshot struct {
	Capability Capability
	Text       string
	Streaming  bool
	Err        error
}

// StreamObserver receives every change of the current task.
// It is called with the aggregator locked and must not call back into it.
type StreamObserver func(StreamSnapshot)

// StreamAggregator owns the single in-flight stream of one UI slot.
type StreamAggregator struct {
	mu       sync.Mutex
	current  *StreamingTask
	observer StreamObserver
}

// NewStreamAggregator creates a StreamAggregator. observer may be nil.
func NewStreamAggregator(observer StreamObserver) *StreamAggregator {
	return &StreamAggregator{observer: observer}
}

// Start opens a new task, discarding the buffer of any prior one.
// Handles to prior tasks become stale.
func (a *StreamAggregator) Start(capability Capability, sourceText string) *StreamingTask {
	a.mu.Lock()
	defer a.mu.Unlock()

	t := &StreamingTask{
		agg:        a,
		capability: capability,
		sourceText: sourceText,
		streaming:  true,
	}
	a.current = t
	a.publish(t)
	return t
}

// Snapshot returns the state of the current task.
func (a *StreamAggregator) Snapshot() StreamSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return StreamSnapshot{}
	}
	return a.current.snapshot()
}

func (a *StreamAggregator) publish(t *StreamingTask) {
	if a.observer != nil {
		a.observer(t.snapshot())
	}
}

// StreamingTask is one in-flight streamed generation. Its buffer only grows.
type StreamingTask struct {
	agg        *StreamAggregator
	capability Capability
	sourceText string
	buf        strings.Builder
	chunks     int
	streaming  bool
	closed     bool
	err        error
}

// Capability returns the capability being streamed.
func (t *StreamingTask) Capability() Capability { return t.capability }

// SourceText returns the selection being transformed.
func (t *StreamingTask) SourceText() string { return t.sourceText }

// Append adds a chunk in arrival order and publishes the grown buffer.
func (t *StreamingTask) Append(chunk string) error {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()

	if err := t.usable(); err != nil {
		return err
	}
	if chunk == "" {
		return nil
	}
	t.buf.WriteString(chunk)
	t.chunks++
	t.agg.publish(t)
	return nil
}

// Complete closes the task and returns the accumulated text.
func (t *StreamingTask) Complete() (string, error) {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()

	if err := t.usable(); err != nil {
		return "", err
	}
	t.streaming = false
	t.closed = true
	t.agg.publish(t)
	return t.buf.String(), nil
}

// Fail closes the task with err. The partial buffer stays visible but is never a result.
func (t *StreamingTask) Fail(err error) {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()

	if t.usable() != nil {
		return
	}
	t.streaming = false
	t.closed = true
	t.err = err
	t.agg.publish(t)
}

// Text returns the buffer accumulated so far.
func (t *StreamingTask) Text() string {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()
	return t.buf.String()
}

// ChunkCount returns the number of non-empty chunks appended.
func (t *StreamingTask) ChunkCount() int {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()
	return t.chunks
}

// Err returns the failure recorded by Fail.
func (t *StreamingTask) Err() error {
	t.agg.mu.Lock()
	defer t.agg.mu.Unlock()
	return t.err
}

func (t *StreamingTask) usable() error {
	if t.agg.current != t {
		return ErrStaleStreamingTask
	}
	if t.closed {
		return ErrStreamingTaskClosed
	}
	return nil
}

func (t *StreamingTask) snapshot() StreamSnapshot {
	return StreamSnapshot{
		Capability: t.capability,
		Text:       t.buf.String(),
		Streaming:  t.streaming,
		Err:        t.err,
	}
}

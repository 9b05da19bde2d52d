package workers

import (
	"bytes"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTokenRefresher_Run(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(*usecases.MockRefreshCredentials)
		passes          int
		expectedLog     string
	}{
		"logs-refreshed-sessions": {
			setExpectations: func(rc *usecases.MockRefreshCredentials) {
				rc.EXPECT().Execute(mock.Anything).
					Return(usecases.RefreshReport{Inspected: 3, Refreshed: 1, Dropped: 1}, nil).
					Once()
				rc.EXPECT().Execute(mock.Anything).Return(usecases.RefreshReport{}, nil).Maybe()
			},
			passes:      1,
			expectedLog: "TokenRefresher: refreshed=1 dropped=1 of 3 sessions",
		},
		"keeps-running-after-error": {
			setExpectations: func(rc *usecases.MockRefreshCredentials) {
				rc.EXPECT().Execute(mock.Anything).Return(usecases.RefreshReport{}, assert.AnError).Once()
				rc.EXPECT().Execute(mock.Anything).Return(usecases.RefreshReport{Inspected: 1}, nil).Maybe()
			},
			passes:      2,
			expectedLog: "TokenRefresher: error refreshing sessions: " + assert.AnError.Error(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rc := usecases.NewMockRefreshCredentials(t)
			tt.setExpectations(rc)

			var logs syncBuffer
			signalChan := make(chan struct{})
			cancel, doneChan := run(t, t.Context(), TokenRefresher{
				RefreshCredentials:  rc,
				Logger:              log.New(&logs, "", 0),
				Interval:            2 * time.Millisecond,
				workerExecutionChan: signalChan,
			})

			got := waitForPasses(t, signalChan, tt.passes, time.Second)
			assert.Equal(t, tt.passes, got)

			cancel()
			// Unblock a pass that ticked before cancellation was observed.
			go func() {
				for range signalChan {
				}
			}()
			waitRunnableStop(t, doneChan)
			close(signalChan)

			assert.Contains(t, logs.String(), tt.expectedLog)
			assert.Contains(t, logs.String(), "TokenRefresher: stopping...")
		})
	}
}

// syncBuffer is a bytes.Buffer safe for the worker goroutine and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

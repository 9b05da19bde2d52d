// Package workers hosts the background runnables of the reading companion.
package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
)

// TokenRefresher is a runnable that periodically refreshes access tokens before they expire.
type TokenRefresher struct {
	RefreshCredentials  usecases.RefreshCredentials `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	Interval            time.Duration               `config:"TOKEN_REFRESH_INTERVAL" default:"1m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic refresh passes.
func (tr TokenRefresher) Run(ctx context.Context) error {
	tr.Logger.Println("TokenRefresher: running...")
	ticker := time.NewTicker(tr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			report, err := tr.RefreshCredentials.Execute(ctx)
			switch {
			case err != nil && !errors.Is(err, context.Canceled):
				tr.Logger.Printf("TokenRefresher: error refreshing sessions: %v", err)
			case report.Refreshed > 0 || report.Dropped > 0:
				tr.Logger.Printf("TokenRefresher: refreshed=%d dropped=%d of %d sessions",
					report.Refreshed, report.Dropped, report.Inspected)
			}
			if tr.workerExecutionChan != nil {
				tr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			tr.Logger.Println("TokenRefresher: stopping...")
			return nil
		}
	}
}

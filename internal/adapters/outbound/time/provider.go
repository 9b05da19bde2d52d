// Package time provides the wall clock used to judge credential expiry.
package time

import (
	"context"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// SystemClock implements domain.CurrentTimeProvider over the wall clock.
// Times are in UTC to compare directly with token expiry claims.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// InitSystemClock registers the SystemClock in the dependency container.
type InitSystemClock struct{}

// Initialize registers domain.CurrentTimeProvider.
func (InitSystemClock) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](SystemClock{})
	return ctx, nil
}

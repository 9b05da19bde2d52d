package time

import (
	"context"
	"testing"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitSystemClock_Initialize(t *testing.T) {
	_, err := InitSystemClock{}.Initialize(context.Background())
	assert.NoError(t, err)

	clock, err := depend.Resolve[domain.CurrentTimeProvider]()
	assert.NoError(t, err)
	assert.IsType(t, SystemClock{}, clock)
}

func TestSystemClock_Now(t *testing.T) {
	now := SystemClock{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

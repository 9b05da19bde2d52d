package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotRegistry_LastCommittedWins(t *testing.T) {
	tests := map[string]struct {
		commitOrder []int
		want        []bool
	}{
		"in-order": {
			commitOrder: []int{0, 1},
			want:        []bool{true, true},
		},
		"older-finishes-after-newer": {
			commitOrder: []int{1, 0},
			want:        []bool{true, false},
		},
		"double-commit": {
			commitOrder: []int{0, 0},
			want:        []bool{true, false},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewSlotRegistry()
			tickets := []SlotTicket{r.Issue("toolbar"), r.Issue("toolbar")}

			got := make([]bool, 0, len(tt.commitOrder))
			for _, i := range tt.commitOrder {
				got = append(got, r.Commit(tickets[i]))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotRegistry_SlotsAreIndependent(t *testing.T) {
	r := NewSlotRegistry()
	a := r.Issue("toolbar")
	b := r.Issue("chat")

	assert.Less(t, a.Generation, b.Generation)
	assert.True(t, r.Commit(b))
	assert.True(t, r.Commit(a))
}

func TestSlotRegistry_Untracked(t *testing.T) {
	r := NewSlotRegistry()
	ticket := r.Issue("")
	assert.True(t, r.Commit(ticket))
	assert.True(t, r.Commit(ticket))
	r.Release(ticket)
	assert.Equal(t, 0, r.tracked())
}

func TestSlotRegistry_Eviction(t *testing.T) {
	tests := map[string]struct {
		run             func(r *SlotRegistry) []bool
		expectedCommits []bool
	}{
		"latest-commit-evicts": {
			run: func(r *SlotRegistry) []bool {
				older, newer := r.Issue("popup"), r.Issue("popup")
				return []bool{r.Commit(newer), r.Commit(older)}
			},
			expectedCommits: []bool{true, false},
		},
		"stale-ticket-stays-stale-after-reissue": {
			run: func(r *SlotRegistry) []bool {
				older, newer := r.Issue("popup"), r.Issue("popup")
				committed := r.Commit(newer)
				r.Release(newer)
				next := r.Issue("popup")
				stale := r.Commit(older)
				r.Release(older)
				return []bool{committed, stale, r.Commit(next)}
			},
			expectedCommits: []bool{true, false, true},
		},
		"failed-newer-lets-older-commit": {
			run: func(r *SlotRegistry) []bool {
				older, newer := r.Issue("popup"), r.Issue("popup")
				r.Release(newer)
				committed := r.Commit(older)
				r.Release(older)
				return []bool{committed}
			},
			expectedCommits: []bool{true},
		},
		"release-without-commit-evicts": {
			run: func(r *SlotRegistry) []bool {
				r.Release(r.Issue("popup"))
				return nil
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewSlotRegistry()
			assert.Equal(t, tt.expectedCommits, tt.run(r))
			assert.Equal(t, 0, r.tracked())
		})
	}
}

func TestSlotRegistry_BoundedByRunningInvocations(t *testing.T) {
	r := NewSlotRegistry()

	var wg sync.WaitGroup
	for i := range 1000 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket := r.Issue(fmt.Sprintf("slot-%d", i%50))
			r.Commit(ticket)
			r.Release(ticket)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, r.tracked())

	for i := range 100000 {
		r.Commit(r.Issue(fmt.Sprintf("slot-%d", i)))
	}
	assert.Equal(t, 0, r.tracked())
}

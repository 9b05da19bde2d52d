package domain

import "sync"

// SlotTicket is the generation an invocation was issued for a UI slot.
type SlotTicket struct {
	SlotID     string
	Generation uint64
}

// SlotRegistry arbitrates results of overlapping invocations targeting the same UI slot.
// A result is committed only when no newer invocation has committed first.
// A slot is tracked only while an invocation issued for it is still running.
type SlotRegistry struct {
	mu    sync.Mutex
	next  uint64
	slots map[string]*slotGenerations
}

type slotGenerations struct {
	// first is the generation that created the entry; older tickets belong to an evicted entry.
	first     uint64
	issued    uint64
	committed uint64
	running   int
}

// NewSlotRegistry creates an empty SlotRegistry.
func NewSlotRegistry() *SlotRegistry {
	return &SlotRegistry{slots: map[string]*slotGenerations{}}
}

// Issue hands out the next generation for slotID.
// Generations increase across all slots, so a ticket never repeats after its slot is evicted.
// An empty slotID yields an untracked ticket that always commits.
func (r *SlotRegistry) Issue(slotID string) SlotTicket {
	if slotID == "" {
		return SlotTicket{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	s, ok := r.slots[slotID]
	if !ok {
		s = &slotGenerations{first: r.next}
		r.slots[slotID] = s
	}
	s.issued = r.next
	s.running++
	return SlotTicket{SlotID: slotID, Generation: r.next}
}

// Commit records the ticket as the slot's visible result.
// It returns false when a newer generation has already been committed.
// Committing the latest issued generation evicts the slot.
func (r *SlotRegistry) Commit(t SlotTicket) bool {
	if t.SlotID == "" {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[t.SlotID]
	if !ok || t.Generation < s.first || t.Generation <= s.committed {
		return false
	}
	if t.Generation == s.issued {
		delete(r.slots, t.SlotID)
		return true
	}
	s.committed = t.Generation
	return true
}

// Release ends the ticket's invocation. The slot is evicted once none of its invocations is running.
func (r *SlotRegistry) Release(t SlotTicket) {
	if t.SlotID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[t.SlotID]
	if !ok || t.Generation < s.first {
		return
	}
	s.running--
	if s.running <= 0 {
		delete(r.slots, t.SlotID)
	}
}

func (r *SlotRegistry) tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

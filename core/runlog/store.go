package runlog

import (
	"sync"
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
)

// Entry is one recorded optimization run.
type Entry struct {
	Result     *model.OptimizationResult `json:"result"`
	FinishedAt time.Time                 `json:"finished_at"`
}

// Filter narrows a query over recorded runs.
type Filter struct {
	Status *model.SolveStatus
	Limit  int
}

// Store keeps the most recent optimization runs in memory. History is
// deliberately not persisted; restarting the process starts an empty log.
type Store struct {
	mu   sync.RWMutex
	ring []Entry
	next int
	size int
}

// DefaultCapacity bounds the number of retained runs.
const DefaultCapacity = 100

// New returns a store retaining up to capacity runs. Non-positive values
// fall back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{ring: make([]Entry, capacity)}
}

// Append records a finished run, evicting the oldest entry when full.
func (s *Store) Append(res *model.OptimizationResult, finishedAt time.Time) {
	if res == nil {
		return
	}
	s.mu.Lock()
	s.ring[s.next] = Entry{Result: res, FinishedAt: finishedAt}
	s.next = (s.next + 1) % len(s.ring)
	if s.size < len(s.ring) {
		s.size++
	}
	s.mu.Unlock()
}

// List returns recorded runs, newest first, honouring the filter.
func (s *Store) List(f Filter) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, s.size)
	for i := 0; i < s.size; i++ {
		idx := (s.next - 1 - i + len(s.ring)) % len(s.ring)
		e := s.ring[idx]
		if f.Status != nil && e.Result.Status != *f.Status {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}

// Len returns the number of retained runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

package supervisor

import "sync"

// RecordStore is the append-only list of launched process ids. The launcher
// is the only writer; the cleanup handler reads it concurrently on signal
// delivery and must never observe a partially appended record, hence the
// mutex rather than relying on the driver's serialized loop.
type RecordStore struct {
	mu   sync.Mutex
	pids []int
}

// NewRecordStore returns an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Clear removes all records. Called once at the start of a run; never during
// cleanup, which is read-only.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pids = nil
}

// Append records one launched process id.
func (s *RecordStore) Append(pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pids = append(s.pids, pid)
}

// Snapshot returns a copy of all recorded pids in launch order.
func (s *RecordStore) Snapshot() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.pids))
	copy(out, s.pids)
	return out
}

// Len returns the number of recorded pids.
func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pids)
}

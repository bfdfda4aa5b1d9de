package supervisor

import "testing"

func TestRecordStore(t *testing.T) {
	s := NewRecordStore()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	s.Append(100)
	s.Append(200)
	s.Append(300)

	got := s.Snapshot()
	want := []int{100, 200, 300}
	if len(got) != len(want) {
		t.Fatalf("Snapshot() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snapshot()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}

func TestRecordStore_SnapshotIsCopy(t *testing.T) {
	s := NewRecordStore()
	s.Append(1)

	snap := s.Snapshot()
	snap[0] = 99

	if s.Snapshot()[0] != 1 {
		t.Error("mutating a snapshot changed the store")
	}
}

package storage

// MemoryStore is an in-memory Provider used in tests and anywhere persistence
// should be a no-op. SaveErr, when set, is returned from Save to simulate a
// failing durable store.
type MemoryStore struct {
	snap    *Snapshot
	Saves   int
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	s.snap = NewSnapshot()
	return nil
}

func (s *MemoryStore) Load() (*Snapshot, error) {
	if s.snap == nil {
		s.snap = NewSnapshot()
	}
	return clone(s.snap), nil
}

func (s *MemoryStore) Save(snap *Snapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.snap = clone(snap)
	s.Saves++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}

func clone(snap *Snapshot) *Snapshot {
	out := &Snapshot{
		Version:      snap.Version,
		SelectedDate: snap.SelectedDate,
	}
	out.Habits = append(out.Habits, snap.Habits...)
	out.Entries = append(out.Entries, snap.Entries...)
	return out
}

package pins

// MemKV is an in-memory KV backend. Not durable; used by tests and as
// a fallback when no database path is configured.
type MemKV struct {
	values map[string][]byte
}

// NewMemKV creates an empty in-memory backend.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemKV) Set(key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}

var _ KV = (*MemKV)(nil)

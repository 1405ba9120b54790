package storage

// Memory is a process-local KV, used for tests and ephemeral sessions.
type Memory struct {
	slots map[string]string
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.slots[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.slots, key)
	return nil
}

package store

import (
	"sort"
	"sync"
	"time"

	"kidreel/types"
)

// Memory is the default in-process store: a map guarded by a RWMutex with
// ids handed out in insertion order.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	items  map[int]types.Content
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, items: make(map[int]types.Content)}
}

func (m *Memory) Create(c types.Content) (types.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	m.nextID++
	if c.Status == "" {
		c.Status = types.StatusDraft
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	m.items[c.ID] = c
	return c, nil
}

func (m *Memory) Get(id int) (types.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.items[id]
	if !ok {
		return types.Content{}, ErrNotFound
	}
	return c, nil
}

func (m *Memory) List() ([]types.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Content, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) Update(c types.Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[c.ID]; !ok {
		return ErrNotFound
	}
	m.items[c.ID] = c
	return nil
}

func (m *Memory) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

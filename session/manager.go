package session

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"shadowme/css"
)

var ErrNameTaken = errors.New("session name already in use")
var ErrNotFound = errors.New("session not found")
var ErrEmptyName = errors.New("session name is empty")

type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	seq        uint64
	engineOpts []css.Option
}

func NewManager(opts ...css.Option) *Manager {
	return &Manager{sessions: make(map[string]*Session), engineOpts: opts}
}

func (m *Manager) Create(name string) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.Name == name {
			return nil, ErrNameTaken
		}
	}

	s := newSession(uuid.New().String(), name, m.engineOpts...)
	m.seq++
	s.seq = m.seq
	m.sessions[s.ID] = s
	return s, nil
}

// List returns the sessions oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].seq < list[j].seq
	})
	return list
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Kill(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.close()
	delete(m.sessions, id)
	return nil
}

// Close kills every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.close()
		delete(m.sessions, id)
	}
}

package state

import "sync"

// Mock is an in-memory Interface for tests.
type Mock struct {
	mu       sync.Mutex
	nav      *NavigationState
	location string
	saves    int
	closed   bool
}

// NewMock creates a mock holding no saved state.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(nav NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nav = &nav
	m.saves++
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nav == nil {
		return nil, nil //nolint:nilnil // matches Store before the first save
	}
	nav := *m.nav
	return &nav, nil
}

func (m *Mock) SaveLocation(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.location = text
}

func (m *Mock) LastLocation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// SetNavigation preloads the saved position.
func (m *Mock) SetNavigation(nav *NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nav = nav
}

// Saves returns how many times SaveNavigation was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// IsClosed reports whether Close was called.
func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)

package state

import "github.com/llehouerou/viewport/internal/layout"

// Mock is an in-memory Interface implementation for tests.
type Mock struct {
	Layouts map[layout.Mode]SavedLayout
	SaveErr error
	GetErr  error
}

// NewMock returns an empty mock store.
func NewMock() *Mock {
	return &Mock{Layouts: make(map[layout.Mode]SavedLayout)}
}

// GetLayout returns the stored layout, or nil when none was saved.
func (m *Mock) GetLayout(mode layout.Mode) (*SavedLayout, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	saved, ok := m.Layouts[mode]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager: no state on first run
	}
	return &saved, nil
}

// SaveLayout stores the layout in memory.
func (m *Mock) SaveLayout(mode layout.Mode, saved SavedLayout) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Layouts[mode] = saved
	return nil
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }

var _ Interface = (*Mock)(nil)

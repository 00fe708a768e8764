// internal/state/interface.go
package state

import "github.com/llehouerou/viewport/internal/layout"

// Interface defines the state manager contract for dependency injection
// and testing.
type Interface interface {
	GetLayout(mode layout.Mode) (*SavedLayout, error)
	SaveLayout(mode layout.Mode, saved SavedLayout) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

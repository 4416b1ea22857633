package ports

import (
	"github.com/xvierd/pomokids/internal/domain"
)

// StateRepository persists the full application state as one document.
// Every mutation path re-saves the whole state; there are no partial
// writes. This is a driven port (implemented by adapters).
type StateRepository interface {
	// Load returns the persisted state, or a default-initialized state
	// when no backing document exists. Missing optional fields default
	// to empty collections and zeroed counters.
	Load() (*domain.AppState, error)

	// Save atomically writes the full state, creating the parent
	// location if absent. Last full write wins.
	Save(state *domain.AppState) error
}

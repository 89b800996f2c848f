// Package sqlite provides the public API for the SQLite Cupboard
// backend, keeping implementation details internal.
package sqlite

import (
	"github.com/petar-djukic/satchel/internal/sqlite"
	"github.com/petar-djukic/satchel/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".satchel-db",
//	})
//	defer backend.Detach()
func NewBackend() types.Cupboard {
	return sqlite.NewBackend()
}

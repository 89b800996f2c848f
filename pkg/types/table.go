package types

import "errors"

// Table provides uniform CRUD operations for a single entity type.
// Get and List return any; callers type-assert to the concrete entity
// struct. Add and Update are deliberately split rather than merged into
// an upsert: the reconciler's convergence protocol is update-first,
// add-on-ErrNotFound, which tolerates races where a record was never
// inserted.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Add inserts a new entity under the given ID.
	// Returns ErrDuplicateID if an entity with that ID already exists.
	Add(id string, data any) error

	// Update replaces the entity stored under the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Update(id string, data any) error

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// List returns every entity in the table.
	List() ([]any, error)

	// Clear removes every entity in the table. Used by destructive
	// import.
	Clear() error
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("duplicate entity ID")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Entity method errors.
var (
	ErrInvalidState = errors.New("invalid state value")
	ErrInvalidName  = errors.New("invalid name")
)

// Entity is implemented by every workspace entity type.
type Entity interface {
	EntityID() string
}

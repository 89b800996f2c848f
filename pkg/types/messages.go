package types

// Op is the kind of change carried by an EntityChange broadcast.
type Op string

// Change operations.
const (
	OpAdded   Op = "added"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Message is a broadcast from the background service to listening UI
// instances. It is a closed sum: EntityChange and DataImported are the
// only variants, so handlers can switch exhaustively.
type Message interface {
	message()
}

// EntityChange announces that one entity was added, updated, or
// deleted. Kind is a standard table name. Entity carries the full
// record for added/updated and is nil for deleted.
type EntityChange struct {
	Kind   string
	Op     Op
	ID     string
	Entity any
}

func (EntityChange) message() {}

// DataImported announces that a bulk import replaced all persisted
// data. Listeners discard in-memory state and re-hydrate rather than
// reconcile incrementally.
type DataImported struct{}

func (DataImported) message() {}

// Notice is a fire-and-forget notification from a UI instance to the
// background service. A closed sum, like Message.
type Notice interface {
	notice()
}

// EntityAdded notifies the background that a local add happened.
type EntityAdded struct {
	Kind   string
	Entity any
}

func (EntityAdded) notice() {}

// EntityUpdated notifies the background that a local update happened.
type EntityUpdated struct {
	Kind   string
	Entity any
}

func (EntityUpdated) notice() {}

// EntityDeleted notifies the background that a local delete happened.
type EntityDeleted struct {
	Kind string
	ID   string
}

func (EntityDeleted) notice() {}

// FolderDeleted carries the cascade decision alongside the delete: when
// MoveTabs is true the folder's tabs were reassigned to TargetFolderID,
// otherwise they were deleted with the folder.
type FolderDeleted struct {
	ID             string
	MoveTabs       bool
	TargetFolderID string
}

func (FolderDeleted) notice() {}

// TabMoved notifies the background that a tab changed folders.
type TabMoved struct {
	TabID       string
	NewFolderID string
}

func (TabMoved) notice() {}

// ImportCompleted notifies the background that a destructive import
// finished; the background rebroadcasts DataImported to all listeners.
type ImportCompleted struct{}

func (ImportCompleted) notice() {}

// UserInfo is returned by the background's user-info request.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

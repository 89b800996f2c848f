package types

// Standard table names for Cupboard.GetTable. They double as the entity
// kind tag in change messages.
const (
	BoardsTable   = "boards"
	FoldersTable  = "folders"
	TabsTable     = "tabs"
	TasksTable    = "tasks"
	NotesTable    = "notes"
	SessionsTable = "sessions"
	HistoryTable  = "history"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	BoardsTable,
	FoldersTable,
	TabsTable,
	TasksTable,
	NotesTable,
	SessionsTable,
	HistoryTable,
}

// SyncedTableNames lists the tables the reconciler hydrates and sweeps.
// History is owned by the background service and excluded.
var SyncedTableNames = []string{
	BoardsTable,
	FoldersTable,
	TabsTable,
	TasksTable,
	NotesTable,
	SessionsTable,
}

// Package sqlite implements the SQLite storage backend for Satchel.
// One table per entity kind; arrays and checklists are stored as JSON
// text columns, timestamps as RFC 3339 strings.
package sqlite

// Schema DDL for all tables. "ordinal" stores the dense per-folder
// order sequence; ORDER is reserved in SQL.
const (
	createBoards = `CREATE TABLE IF NOT EXISTS boards (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createFolders = `CREATE TABLE IF NOT EXISTS folders (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    board_id TEXT NOT NULL,
    color TEXT,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createTabs = `CREATE TABLE IF NOT EXISTS tabs (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    url TEXT NOT NULL,
    favicon TEXT,
    folder_id TEXT NOT NULL DEFAULT '',
    browser_tab_id INTEGER,
    last_accessed TEXT,
    status TEXT NOT NULL,
    ordinal INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL,
    priority TEXT NOT NULL,
    due_date TEXT,
    completed_at TEXT,
    board_id TEXT,
    folder_id TEXT,
    tab_ids TEXT NOT NULL DEFAULT '[]',
    checklist TEXT NOT NULL DEFAULT '[]',
    completed_sessions INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    format TEXT NOT NULL,
    folder_id TEXT,
    board_id TEXT,
    tab_id TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createSessions = `CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    tab_ids TEXT NOT NULL DEFAULT '[]',
    start_time TEXT NOT NULL,
    end_time TEXT,
    summary TEXT,
    created_at TEXT NOT NULL
);`

	createHistory = `CREATE TABLE IF NOT EXISTS history (
    id TEXT PRIMARY KEY,
    url TEXT NOT NULL,
    title TEXT NOT NULL,
    favicon TEXT,
    last_visit_time TEXT,
    visit_count INTEGER NOT NULL DEFAULT 0,
    typed_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`
)

// schemaStatements lists all DDL statements executed on Attach.
var schemaStatements = []string{
	createBoards,
	createFolders,
	createTabs,
	createTasks,
	createNotes,
	createSessions,
	createHistory,
}

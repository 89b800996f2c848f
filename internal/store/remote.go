package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// Remote application: the landing side of inbound broadcasts. These
// never queue outbound effects. Cascade consequences (tab deletions or
// reassignments after a folder delete, renumbers after a move) arrive
// as their own broadcast messages from the originating instance, so
// remote deletes remove exactly one record and nothing else.

// ApplyRemoteAdd inserts a broadcast entity. Idempotent on id: the echo
// of a locally-originated add finds the record present and no-ops.
func (s *Store) ApplyRemoteAdd(kind string, entity any) {
	switch kind {
	case types.BoardsTable:
		if v, ok := entity.(types.Board); ok {
			s.AddBoard(v, OriginRemote)
		}
	case types.FoldersTable:
		if v, ok := entity.(types.Folder); ok {
			s.AddFolder(v, OriginRemote)
		}
	case types.TabsTable:
		if v, ok := entity.(types.Tab); ok {
			s.AddTab(v, OriginRemote)
		}
	case types.TasksTable:
		if v, ok := entity.(types.Task); ok {
			s.AddTask(v, OriginRemote)
		}
	case types.NotesTable:
		if v, ok := entity.(types.Note); ok {
			s.AddNote(v, OriginRemote)
		}
	case types.SessionsTable:
		if v, ok := entity.(types.Session); ok {
			s.AddSession(v, OriginRemote)
		}
	case types.HistoryTable:
		if v, ok := entity.(types.HistoryItem); ok {
			s.AddHistoryItem(v)
		}
	}
}

// ApplyRemoteUpdate replaces a record with the broadcast copy,
// unconditionally. Updates are full records, so reapplying one is
// harmless.
func (s *Store) ApplyRemoteUpdate(kind string, entity any) {
	switch kind {
	case types.BoardsTable:
		if v, ok := entity.(types.Board); ok {
			s.ReplaceBoard(v)
		}
	case types.FoldersTable:
		if v, ok := entity.(types.Folder); ok {
			s.ReplaceFolder(v)
		}
	case types.TabsTable:
		if v, ok := entity.(types.Tab); ok {
			s.ReplaceTab(v)
		}
	case types.TasksTable:
		if v, ok := entity.(types.Task); ok {
			s.ReplaceTask(v)
		}
	case types.NotesTable:
		if v, ok := entity.(types.Note); ok {
			s.ReplaceNote(v)
		}
	case types.SessionsTable:
		if v, ok := entity.(types.Session); ok {
			s.ReplaceSession(v)
		}
	case types.HistoryTable:
		if v, ok := entity.(types.HistoryItem); ok {
			s.AddHistoryItem(v)
		}
	}
}

// ApplyRemoteDelete removes the single broadcast record.
func (s *Store) ApplyRemoteDelete(kind, id string) {
	switch kind {
	case types.BoardsTable:
		if _, ok := s.boards.remove(id); ok {
			s.changed(kind)
		}
	case types.FoldersTable:
		if _, ok := s.folders.remove(id); ok {
			s.changed(kind)
		}
	case types.TabsTable:
		if _, ok := s.tabs.remove(id); ok {
			s.changed(kind)
		}
	case types.TasksTable:
		if _, ok := s.tasks.remove(id); ok {
			s.changed(kind)
		}
	case types.NotesTable:
		if _, ok := s.notes.remove(id); ok {
			s.changed(kind)
		}
	case types.SessionsTable:
		if _, ok := s.sessions.remove(id); ok {
			s.changed(kind)
		}
	case types.HistoryTable:
		s.RemoveHistoryItem(id)
	}
}

// Reset clears every collection. Used before a re-hydration forced by a
// DataImported broadcast.
func (s *Store) Reset() {
	s.boards.setAll(nil)
	s.folders.setAll(nil)
	s.tabs.setAll(nil)
	s.tasks.setAll(nil)
	s.notes.setAll(nil)
	s.sessions.setAll(nil)
	s.history.setAll(nil)
}

package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddBoard inserts a board. Local origin assigns an id when empty,
// stamps timestamps, and queues persist and notify effects. Remote
// origin takes the entity as-is and is idempotent on id.
func (s *Store) AddBoard(board types.Board, origin Origin) types.Board {
	if origin == OriginLocal {
		if board.ID == "" {
			board.ID = newID()
		}
		now := s.now()
		board.CreatedAt = now
		board.UpdatedAt = now
	}
	if !s.boards.insert(board) {
		return board // already present, silent no-op
	}
	if origin == OriginLocal {
		s.persistUpsert(types.BoardsTable, board.ID, board)
		s.notify(types.EntityAdded{Kind: types.BoardsTable, Entity: board})
	}
	s.changed(types.BoardsTable)
	return board
}

// UpdateBoard applies patch to the matching board and refreshes
// UpdatedAt. No-op if the id is unknown.
func (s *Store) UpdateBoard(id string, patch func(*types.Board), origin Origin) {
	board, ok := s.boards.get(id)
	if !ok {
		return
	}
	patch(&board)
	board.ID = id
	board.Touch(s.now())
	s.boards.replace(board)
	if origin == OriginLocal {
		s.persistUpsert(types.BoardsTable, id, board)
		s.notify(types.EntityUpdated{Kind: types.BoardsTable, Entity: board})
	}
	s.changed(types.BoardsTable)
}

// ReplaceBoard overwrites the stored board wholesale. Used when an
// inbound broadcast carries the full record; safe to reapply.
func (s *Store) ReplaceBoard(board types.Board) {
	if !s.boards.replace(board) {
		s.boards.insert(board)
	}
	s.changed(types.BoardsTable)
}

// DeleteBoard removes a board and cascades to its folders and their
// tabs. Local origin queues persistence removals and notices for every
// cascaded entity.
func (s *Store) DeleteBoard(id string, origin Origin) {
	if _, ok := s.boards.remove(id); !ok {
		return
	}

	folderIDs, tabIDs := cascadeBoardDelete(s.folders.list(), s.tabs.list(), id)
	for _, fid := range folderIDs {
		s.folders.remove(fid)
	}
	for _, tid := range tabIDs {
		s.tabs.remove(tid)
	}

	if origin == OriginLocal {
		s.persistDelete(types.BoardsTable, id)
		s.notify(types.EntityDeleted{Kind: types.BoardsTable, ID: id})
		for _, fid := range folderIDs {
			s.persistDelete(types.FoldersTable, fid)
			s.notify(types.EntityDeleted{Kind: types.FoldersTable, ID: fid})
		}
		for _, tid := range tabIDs {
			s.persistDelete(types.TabsTable, tid)
			s.notify(types.EntityDeleted{Kind: types.TabsTable, ID: tid})
		}
	}

	s.changed(types.BoardsTable)
	if len(folderIDs) > 0 {
		s.changed(types.FoldersTable)
	}
	if len(tabIDs) > 0 {
		s.changed(types.TabsTable)
	}
}

// EnsureDefaultBoard materializes the bootstrap board when the store
// holds no boards at all. Callers must invoke it only after hydration
// completes, so an empty collection really means an empty store rather
// than a fetch still in flight.
func (s *Store) EnsureDefaultBoard() {
	if s.boards.size() > 0 {
		return
	}
	board := types.DefaultBoard(s.now().UTC())
	s.AddBoard(board, OriginLocal)
}

package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddFolder inserts a folder. Local origin assigns id and CreatedAt and
// queues persist and notify effects; remote origin is idempotent on id.
func (s *Store) AddFolder(folder types.Folder, origin Origin) types.Folder {
	if origin == OriginLocal {
		if folder.ID == "" {
			folder.ID = newID()
		}
		folder.CreatedAt = s.now()
	}
	if !s.folders.insert(folder) {
		return folder
	}
	if origin == OriginLocal {
		s.persistUpsert(types.FoldersTable, folder.ID, folder)
		s.notify(types.EntityAdded{Kind: types.FoldersTable, Entity: folder})
	}
	s.changed(types.FoldersTable)
	return folder
}

// UpdateFolder applies patch to the matching folder. No-op if the id is
// unknown.
func (s *Store) UpdateFolder(id string, patch func(*types.Folder), origin Origin) {
	folder, ok := s.folders.get(id)
	if !ok {
		return
	}
	patch(&folder)
	folder.ID = id
	s.folders.replace(folder)
	if origin == OriginLocal {
		s.persistUpsert(types.FoldersTable, id, folder)
		s.notify(types.EntityUpdated{Kind: types.FoldersTable, Entity: folder})
	}
	s.changed(types.FoldersTable)
}

// ReplaceFolder overwrites the stored folder wholesale; inserts when
// absent. Safe to reapply.
func (s *Store) ReplaceFolder(folder types.Folder) {
	if !s.folders.replace(folder) {
		s.folders.insert(folder)
	}
	s.changed(types.FoldersTable)
}

// DeleteFolder removes a folder. Its tabs either move to
// targetFolderID (moveTabs true) with a dense renumber, or are deleted
// with it — a folder deletion never leaves a tab pointing at a dead
// folder id.
func (s *Store) DeleteFolder(id string, moveTabs bool, targetFolderID string, origin Origin) {
	if _, ok := s.folders.remove(id); !ok {
		return
	}

	deleted, moved := cascadeFolderDelete(s.tabs.list(), id, moveTabs, targetFolderID)
	for _, tid := range deleted {
		s.tabs.remove(tid)
	}
	for _, tab := range moved {
		s.tabs.replace(tab)
	}

	if origin == OriginLocal {
		s.persistDelete(types.FoldersTable, id)
		s.notify(types.FolderDeleted{ID: id, MoveTabs: moveTabs, TargetFolderID: targetFolderID})
		for _, tid := range deleted {
			s.persistDelete(types.TabsTable, tid)
			s.notify(types.EntityDeleted{Kind: types.TabsTable, ID: tid})
		}
		for _, tab := range moved {
			s.persistUpsert(types.TabsTable, tab.ID, tab)
			s.notify(types.EntityUpdated{Kind: types.TabsTable, Entity: tab})
		}
	}

	s.changed(types.FoldersTable)
	if len(deleted) > 0 || len(moved) > 0 {
		s.changed(types.TabsTable)
	}
}

package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddTab inserts a tab. Local origin assigns id and CreatedAt, places
// the tab at the end of its folder's order, and queues persist and
// notify effects; remote origin is idempotent on id.
func (s *Store) AddTab(tab types.Tab, origin Origin) types.Tab {
	if origin == OriginLocal {
		if tab.ID == "" {
			tab.ID = newID()
		}
		now := s.now()
		tab.CreatedAt = now
		if tab.LastAccessed.IsZero() {
			tab.LastAccessed = now
		}
		if tab.Status == "" {
			tab.Status = types.TabStatusClosed
		}
		tab.Order = s.folderTabCount(tab.FolderID)
	}
	if !s.tabs.insert(tab) {
		return tab
	}
	if origin == OriginLocal {
		s.persistUpsert(types.TabsTable, tab.ID, tab)
		s.notify(types.EntityAdded{Kind: types.TabsTable, Entity: tab})
	}
	s.changed(types.TabsTable)
	return tab
}

func (s *Store) folderTabCount(folderID string) int {
	n := 0
	for _, t := range s.tabs.list() {
		if t.FolderID == folderID {
			n++
		}
	}
	return n
}

// UpdateTab applies patch to the matching tab. No-op if the id is
// unknown.
func (s *Store) UpdateTab(id string, patch func(*types.Tab), origin Origin) {
	tab, ok := s.tabs.get(id)
	if !ok {
		return
	}
	patch(&tab)
	tab.ID = id
	s.tabs.replace(tab)
	if origin == OriginLocal {
		s.persistUpsert(types.TabsTable, id, tab)
		s.notify(types.EntityUpdated{Kind: types.TabsTable, Entity: tab})
	}
	s.changed(types.TabsTable)
}

// ReplaceTab overwrites the stored tab wholesale; inserts when absent.
func (s *Store) ReplaceTab(tab types.Tab) {
	if !s.tabs.replace(tab) {
		s.tabs.insert(tab)
	}
	s.changed(types.TabsTable)
}

// DeleteTab removes a tab and renumbers its folder so order stays
// dense. Tasks and sessions keep their weak references; consumers skip
// ids that no longer resolve.
func (s *Store) DeleteTab(id string, origin Origin) {
	tab, ok := s.tabs.remove(id)
	if !ok {
		return
	}

	changed := renumberFolder(s.tabs.list(), tab.FolderID)
	for _, t := range changed {
		s.tabs.replace(t)
	}

	if origin == OriginLocal {
		s.persistDelete(types.TabsTable, id)
		s.notify(types.EntityDeleted{Kind: types.TabsTable, ID: id})
		for _, t := range changed {
			s.persistUpsert(types.TabsTable, t.ID, t)
			s.notify(types.EntityUpdated{Kind: types.TabsTable, Entity: t})
		}
	}
	s.changed(types.TabsTable)
}

// MoveTab reassigns a tab to another folder, appending it after the
// target's tabs and renumbering both folders densely.
func (s *Store) MoveTab(id, newFolderID string, origin Origin) {
	tab, ok := s.tabs.get(id)
	if !ok || tab.FolderID == newFolderID {
		return
	}
	oldFolder := tab.FolderID

	tab.FolderID = newFolderID
	tab.Order = s.folderTabCount(newFolderID)
	s.tabs.replace(tab)

	touched := []types.Tab{tab}
	for _, t := range renumberFolder(s.tabs.list(), oldFolder) {
		s.tabs.replace(t)
		touched = append(touched, t)
	}

	if origin == OriginLocal {
		for _, t := range touched {
			s.persistUpsert(types.TabsTable, t.ID, t)
			s.notify(types.EntityUpdated{Kind: types.TabsTable, Entity: t})
		}
		s.notify(types.TabMoved{TabID: id, NewFolderID: newFolderID})
	}
	s.changed(types.TabsTable)
}

// ReorderTabs places a folder's tabs in exactly the given id order,
// renumbering densely so no gaps or duplicates remain.
func (s *Store) ReorderTabs(folderID string, orderedIDs []string, origin Origin) {
	changed := reorderFolder(s.tabs.list(), folderID, orderedIDs)
	if len(changed) == 0 {
		return
	}
	for _, t := range changed {
		s.tabs.replace(t)
	}
	if origin == OriginLocal {
		for _, t := range changed {
			s.persistUpsert(types.TabsTable, t.ID, t)
			s.notify(types.EntityUpdated{Kind: types.TabsTable, Entity: t})
		}
	}
	s.changed(types.TabsTable)
}

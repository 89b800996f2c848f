package store

import (
	"sort"

	"github.com/petar-djukic/satchel/pkg/types"
)

// Cascade rules are pure functions over collection snapshots: they take
// the current state and return what must change, without touching any
// slice. The aggregate applies the result, which keeps the
// cross-entity rules testable in isolation and avoids cyclic knowledge
// between slices.

// cascadeBoardDelete returns the folder and tab ids orphaned by
// deleting the given board.
func cascadeBoardDelete(folders []types.Folder, tabs []types.Tab, boardID string) (folderIDs, tabIDs []string) {
	doomed := make(map[string]bool)
	for _, f := range folders {
		if f.BoardID == boardID {
			folderIDs = append(folderIDs, f.ID)
			doomed[f.ID] = true
		}
	}
	for _, t := range tabs {
		if doomed[t.FolderID] {
			tabIDs = append(tabIDs, t.ID)
		}
	}
	return folderIDs, tabIDs
}

// cascadeFolderDelete resolves what happens to a deleted folder's tabs.
// With moveTabs set, the folder's tabs are reassigned to the target
// folder, appended after its existing tabs with a dense renumber;
// otherwise they are deleted outright. Never both.
func cascadeFolderDelete(tabs []types.Tab, folderID string, moveTabs bool, targetFolderID string) (deleted []string, moved []types.Tab) {
	var orphans []types.Tab
	for _, t := range tabs {
		if t.FolderID == folderID {
			orphans = append(orphans, t)
		}
	}
	if len(orphans) == 0 {
		return nil, nil
	}

	if !moveTabs {
		for _, t := range orphans {
			deleted = append(deleted, t.ID)
		}
		return deleted, nil
	}

	sortTabsByOrder(orphans)
	next := 0
	for _, t := range tabs {
		if t.FolderID == targetFolderID {
			next++
		}
	}
	for _, t := range orphans {
		t.FolderID = targetFolderID
		t.Order = next
		next++
		moved = append(moved, t)
	}
	return nil, moved
}

// renumberFolder returns the folder's tabs with a dense zero-based
// order, preserving their current relative order. Only tabs whose
// order actually changed are returned.
func renumberFolder(tabs []types.Tab, folderID string) []types.Tab {
	var members []types.Tab
	for _, t := range tabs {
		if t.FolderID == folderID {
			members = append(members, t)
		}
	}
	sortTabsByOrder(members)

	var changed []types.Tab
	for i, t := range members {
		if t.Order != i {
			t.Order = i
			changed = append(changed, t)
		}
	}
	return changed
}

// reorderFolder places the folder's tabs in exactly the given id order,
// assigning dense zero-based positions. Ids not in the folder are
// ignored; folder tabs missing from orderedIDs keep their relative
// order after the listed ones.
func reorderFolder(tabs []types.Tab, folderID string, orderedIDs []string) []types.Tab {
	byID := make(map[string]types.Tab)
	for _, t := range tabs {
		if t.FolderID == folderID {
			byID[t.ID] = t
		}
	}

	var sequence []types.Tab
	seen := make(map[string]bool)
	for _, id := range orderedIDs {
		if t, ok := byID[id]; ok && !seen[id] {
			sequence = append(sequence, t)
			seen[id] = true
		}
	}
	var rest []types.Tab
	for _, t := range byID {
		if !seen[t.ID] {
			rest = append(rest, t)
		}
	}
	sortTabsByOrder(rest)
	sequence = append(sequence, rest...)

	var changed []types.Tab
	for i, t := range sequence {
		if t.Order != i {
			t.Order = i
			changed = append(changed, t)
		}
	}
	return changed
}

func sortTabsByOrder(tabs []types.Tab) {
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Order < tabs[j].Order })
}

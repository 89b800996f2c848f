package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// History is owned by the background service; the UI-side collection is
// a read-mostly mirror. There is no local-origin mutation path for it,
// only silent application of inbound state.

// AddHistoryItem applies an inbound history item. Idempotent on id.
func (s *Store) AddHistoryItem(item types.HistoryItem) {
	if !s.history.insert(item) {
		return
	}
	s.changed(types.HistoryTable)
}

// SetHistory replaces the mirrored history collection wholesale.
func (s *Store) SetHistory(items []types.HistoryItem) {
	s.history.setAll(items)
	s.changed(types.HistoryTable)
}

// RemoveHistoryItem applies an inbound history removal.
func (s *Store) RemoveHistoryItem(id string) {
	if _, ok := s.history.remove(id); !ok {
		return
	}
	s.changed(types.HistoryTable)
}

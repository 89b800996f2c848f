package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddNote inserts a note. Local origin assigns id, default format, and
// timestamps; remote origin is idempotent on id.
func (s *Store) AddNote(note types.Note, origin Origin) types.Note {
	if origin == OriginLocal {
		if note.ID == "" {
			note.ID = newID()
		}
		if note.Format == "" {
			note.Format = types.NoteFormatMarkdown
		}
		now := s.now()
		note.CreatedAt = now
		note.UpdatedAt = now
	}
	if !s.notes.insert(note) {
		return note
	}
	if origin == OriginLocal {
		s.persistUpsert(types.NotesTable, note.ID, note)
		s.notify(types.EntityAdded{Kind: types.NotesTable, Entity: note})
	}
	s.changed(types.NotesTable)
	return note
}

// UpdateNote applies patch to the matching note and refreshes
// UpdatedAt. No-op if the id is unknown.
func (s *Store) UpdateNote(id string, patch func(*types.Note), origin Origin) {
	note, ok := s.notes.get(id)
	if !ok {
		return
	}
	patch(&note)
	note.ID = id
	note.Touch(s.now())
	s.notes.replace(note)
	if origin == OriginLocal {
		s.persistUpsert(types.NotesTable, id, note)
		s.notify(types.EntityUpdated{Kind: types.NotesTable, Entity: note})
	}
	s.changed(types.NotesTable)
}

// ReplaceNote overwrites the stored note wholesale; inserts when
// absent.
func (s *Store) ReplaceNote(note types.Note) {
	if !s.notes.replace(note) {
		s.notes.insert(note)
	}
	s.changed(types.NotesTable)
}

// DeleteNote removes a note.
func (s *Store) DeleteNote(id string, origin Origin) {
	if _, ok := s.notes.remove(id); !ok {
		return
	}
	if origin == OriginLocal {
		s.persistDelete(types.NotesTable, id)
		s.notify(types.EntityDeleted{Kind: types.NotesTable, ID: id})
	}
	s.changed(types.NotesTable)
}

package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddSession inserts a session. Local origin assigns id and timestamps;
// remote origin is idempotent on id.
func (s *Store) AddSession(session types.Session, origin Origin) types.Session {
	if origin == OriginLocal {
		if session.ID == "" {
			session.ID = newID()
		}
		now := s.now()
		session.CreatedAt = now
		if session.StartTime.IsZero() {
			session.StartTime = now
		}
	}
	if session.TabIDs == nil {
		session.TabIDs = []string{}
	}
	if !s.sessions.insert(session) {
		return session
	}
	if origin == OriginLocal {
		s.persistUpsert(types.SessionsTable, session.ID, session)
		s.notify(types.EntityAdded{Kind: types.SessionsTable, Entity: session})
	}
	s.changed(types.SessionsTable)
	return session
}

// UpdateSession applies patch to the matching session. No-op if the id
// is unknown.
func (s *Store) UpdateSession(id string, patch func(*types.Session), origin Origin) {
	session, ok := s.sessions.get(id)
	if !ok {
		return
	}
	session = session.Clone()
	patch(&session)
	session.ID = id
	s.sessions.replace(session)
	if origin == OriginLocal {
		s.persistUpsert(types.SessionsTable, id, session)
		s.notify(types.EntityUpdated{Kind: types.SessionsTable, Entity: session})
	}
	s.changed(types.SessionsTable)
}

// ReplaceSession overwrites the stored session wholesale; inserts when
// absent.
func (s *Store) ReplaceSession(session types.Session) {
	if !s.sessions.replace(session) {
		s.sessions.insert(session)
	}
	s.changed(types.SessionsTable)
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(id string, origin Origin) {
	if _, ok := s.sessions.remove(id); !ok {
		return
	}
	if origin == OriginLocal {
		s.persistDelete(types.SessionsTable, id)
		s.notify(types.EntityDeleted{Kind: types.SessionsTable, ID: id})
	}
	s.changed(types.SessionsTable)
}

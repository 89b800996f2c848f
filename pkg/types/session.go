package types

import "time"

// Session is a time-bounded grouping of tabs representing a browsing or
// work period. Open-ended until EndTime is set. TabIDs are weak
// references, like Task.TabIDs.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	TabIDs    []string   `json:"tabIds"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// EntityID returns the session id.
func (s Session) EntityID() string { return s.ID }

// Close ends the session at the given time. Idempotent: closing an
// already-closed session moves its end time.
func (s *Session) Close(now time.Time) {
	end := now
	s.EndTime = &end
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	c.TabIDs = append([]string(nil), s.TabIDs...)
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	return c
}

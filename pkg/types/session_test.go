package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionClose(t *testing.T) {
	s := &Session{ID: "s1", StartTime: time.Now().Add(-time.Hour)}
	assert.Nil(t, s.EndTime)

	end := time.Now()
	s.Close(end)
	assert.NotNil(t, s.EndTime)
	assert.Equal(t, end, *s.EndTime)

	later := end.Add(time.Minute)
	s.Close(later)
	assert.Equal(t, later, *s.EndTime)
}

func TestSessionClone(t *testing.T) {
	end := time.Now()
	s := Session{ID: "s1", TabIDs: []string{"a"}, EndTime: &end}

	clone := s.Clone()
	clone.TabIDs[0] = "b"
	*clone.EndTime = end.Add(time.Hour)

	assert.Equal(t, "a", s.TabIDs[0])
	assert.Equal(t, end, *s.EndTime)
}

func TestTabSetStatus(t *testing.T) {
	tab := &Tab{ID: "t1", Status: TabStatusOpen}
	assert.NoError(t, tab.SetStatus(TabStatusClosed))
	assert.Equal(t, TabStatusClosed, tab.Status)
	assert.ErrorIs(t, tab.SetStatus("suspended"), ErrInvalidState)
}

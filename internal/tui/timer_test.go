package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/satchel/internal/timer"
	"github.com/petar-djukic/satchel/pkg/types"
)

func newViewTimer() *timer.Timer {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return timer.New(types.DefaultTimerConfig(), timer.WithClock(func() time.Time { return now }))
}

func TestViewShowsClockAndStatus(t *testing.T) {
	m := newModel(newViewTimer())
	view := m.View()
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "paused")
	assert.Contains(t, view, "Work")
	assert.Contains(t, view, "Short Break")
}

func TestSpaceTogglesRunning(t *testing.T) {
	m := newModel(newViewTimer())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	view := updated.View()
	assert.Contains(t, view, "running")
}

func TestModeKeysSwitchView(t *testing.T) {
	m := newModel(newViewTimer())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	assert.Contains(t, updated.View(), "05:00")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", formatClock(1500))
	assert.Equal(t, "00:09", formatClock(9))
	assert.Equal(t, "00:00", formatClock(-3))
}

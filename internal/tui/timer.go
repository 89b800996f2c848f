// Package tui renders the interactive pomodoro view.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petar-djukic/satchel/internal/timer"
)

type tickMsg time.Time

type styles struct {
	mode       lipgloss.Style
	activeMode lipgloss.Style
	clock      lipgloss.Style
	running    lipgloss.Style
	paused     lipgloss.Style
	help       lipgloss.Style
}

func newStyles() styles {
	return styles{
		mode:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("243")),
		activeMode: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("205")),
		clock:      lipgloss.NewStyle().Bold(true).Padding(1, 2),
		running:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		paused:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		help:       lipgloss.NewStyle().Faint(true),
	}
}

type model struct {
	timer  *timer.Timer
	styles styles
}

func newModel(tm *timer.Timer) model {
	return model{timer: tm, styles: newStyles()}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.timer.SyncTime()
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.timer.SetRunning(!m.timer.State().Running)
		case "1":
			m.timer.SetMode(timer.ModeWork)
		case "2":
			m.timer.SetMode(timer.ModeShortBreak)
		case "3":
			m.timer.SetMode(timer.ModeLongBreak)
		}
	}
	return m, nil
}

func (m model) View() string {
	st := m.timer.State()

	tabs := make([]string, 0, 3)
	for _, mode := range []timer.Mode{timer.ModeWork, timer.ModeShortBreak, timer.ModeLongBreak} {
		style := m.styles.mode
		if mode == st.Mode {
			style = m.styles.activeMode
		}
		tabs = append(tabs, style.Render(modeLabel(mode)))
	}

	status := m.styles.paused.Render("paused")
	if st.Running {
		status = m.styles.running.Render("running")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.styles.clock.Render(formatClock(st.TimeLeft)),
		fmt.Sprintf("%s  ·  %d sessions done", status, st.CompletedWork),
		m.styles.help.Render("space start/pause · 1/2/3 switch mode · q quit"),
	)
}

func modeLabel(mode timer.Mode) string {
	switch mode {
	case timer.ModeShortBreak:
		return "Short Break"
	case timer.ModeLongBreak:
		return "Long Break"
	default:
		return "Work"
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// RunTimer drives the pomodoro view until the user quits. The timer's
// tick loop keeps counting in the background regardless of the view.
func RunTimer(tm *timer.Timer) error {
	p := tea.NewProgram(newModel(tm))
	_, err := p.Run()
	return err
}

package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/internal/sqlite"
	"github.com/petar-djukic/satchel/pkg/types"
)

type stubBrowser struct {
	history []types.HistoryItem
}

func (s stubBrowser) History(context.Context) ([]types.HistoryItem, error) { return s.history, nil }
func (s stubBrowser) OpenTabs(context.Context) ([]types.Tab, error)        { return nil, nil }

func newTestBackground(t *testing.T, browser BrowserSource) (*Background, *Broker) {
	t.Helper()
	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { _ = backend.Detach() })
	broker := NewBroker()
	return NewBackground(broker, backend, browser, nil), broker
}

func TestNotifyRebroadcastsEntityChanges(t *testing.T) {
	bg, broker := newTestBackground(t, nil)
	ch := broker.Subscribe()

	board := types.Board{ID: "b1", Name: "Work"}
	bg.Notify(types.EntityAdded{Kind: types.BoardsTable, Entity: board})

	msg := (<-ch).(types.EntityChange)
	assert.Equal(t, types.BoardsTable, msg.Kind)
	assert.Equal(t, types.OpAdded, msg.Op)
	assert.Equal(t, "b1", msg.ID)
	assert.Equal(t, board, msg.Entity)

	bg.Notify(types.EntityDeleted{Kind: types.BoardsTable, ID: "b1"})
	msg = (<-ch).(types.EntityChange)
	assert.Equal(t, types.OpDeleted, msg.Op)
	assert.Nil(t, msg.Entity)
}

func TestNotifyImportCompletedBroadcastsDataImported(t *testing.T) {
	bg, broker := newTestBackground(t, nil)
	ch := broker.Subscribe()

	bg.Notify(types.ImportCompleted{})
	_, ok := (<-ch).(types.DataImported)
	assert.True(t, ok)
}

func TestBrowserHistoryPersistsNativeEntries(t *testing.T) {
	visit := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	browser := stubBrowser{history: []types.HistoryItem{
		{URL: "https://go.dev", Title: "Go", LastVisitTime: &visit, VisitCount: 7},
	}}
	bg, _ := newTestBackground(t, browser)

	items, err := bg.BrowserHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://go.dev", items[0].URL)
	assert.NotEmpty(t, items[0].ID)

	// A second fetch must not duplicate rows already persisted.
	items, err = bg.BrowserHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestBackgroundSessionLifecycle(t *testing.T) {
	bg, broker := newTestBackground(t, nil)
	ch := broker.Subscribe()

	s := bg.StartSession("morning research", []string{"tab-1", "tab-2"})
	msg := (<-ch).(types.EntityChange)
	assert.Equal(t, types.SessionsTable, msg.Kind)
	assert.Equal(t, types.OpAdded, msg.Op)

	sessions, err := bg.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].EndTime)

	bg.EndSession(s.ID, "found the regression")
	msg = (<-ch).(types.EntityChange)
	assert.Equal(t, types.OpUpdated, msg.Op)
	updated := msg.Entity.(types.Session)
	assert.NotNil(t, updated.EndTime)
	assert.Equal(t, "found the regression", updated.Summary)

	// Ending an unknown session is a no-op, not a broadcast.
	bg.EndSession("missing", "")
	select {
	case extra := <-ch:
		t.Fatalf("unexpected broadcast %v", extra)
	default:
	}
}

func TestRecordVisitAnnouncesHistoryItem(t *testing.T) {
	bg, broker := newTestBackground(t, nil)
	ch := broker.Subscribe()

	item := bg.RecordVisit("https://example.com", "Example")
	msg := (<-ch).(types.EntityChange)
	assert.Equal(t, types.HistoryTable, msg.Kind)
	assert.Equal(t, item.ID, msg.ID)

	items, err := bg.History(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/pkg/types"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendAttachDetachLifecycle(t *testing.T) {
	b := NewBackend()
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	require.NoError(t, b.Attach(cfg))
	assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)

	tbl, err := b.GetTable(types.BoardsTable)
	require.NoError(t, err)
	require.NotNil(t, tbl)

	_, err = b.GetTable("widgets")
	assert.ErrorIs(t, err, types.ErrTableNotFound)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach()) // idempotent

	_, err = b.GetTable(types.BoardsTable)
	assert.ErrorIs(t, err, types.ErrCupboardDetached)
}

func TestBackendInvalidConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{Backend: ""}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
}

func TestTableAddGetUpdateDelete(t *testing.T) {
	b := newTestBackend(t)
	tbl, err := b.GetTable(types.BoardsTable)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	board := types.Board{ID: "b1", Name: "Work", Color: "#112233", CreatedAt: now, UpdatedAt: now}

	require.NoError(t, tbl.Add(board.ID, board))
	assert.ErrorIs(t, tbl.Add(board.ID, board), types.ErrDuplicateID)

	got, err := tbl.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, board, got.(types.Board))

	board.Name = "Deep Work"
	board.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, tbl.Update(board.ID, board))

	got, err = tbl.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", got.(types.Board).Name)

	assert.ErrorIs(t, tbl.Update("missing", board), types.ErrNotFound)

	require.NoError(t, tbl.Delete("b1"))
	assert.ErrorIs(t, tbl.Delete("b1"), types.ErrNotFound)
	_, err = tbl.Get("b1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestTableRejectsWrongEntityType(t *testing.T) {
	b := newTestBackend(t)
	tbl, err := b.GetTable(types.BoardsTable)
	require.NoError(t, err)

	assert.ErrorIs(t, tbl.Add("x", types.Note{ID: "x"}), types.ErrInvalidData)
	assert.ErrorIs(t, tbl.Add("", types.Board{}), types.ErrInvalidID)
}

func TestTaskRoundTripPreservesNestedFields(t *testing.T) {
	b := newTestBackend(t)
	tbl, err := b.GetTable(types.TasksTable)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 30, 0, 123456789, time.UTC)
	due := now.Add(48 * time.Hour)
	task := types.Task{
		ID:       "t1",
		Title:    "Ship release",
		Status:   types.TaskStatusDoing,
		Priority: types.PriorityHigh,
		DueDate:  &due,
		BoardID:  "b1",
		TabIDs:   []string{"tab-a", "tab-b"},
		Checklist: []types.ChecklistItem{
			{ID: "c1", Text: "write changelog", Completed: true},
			{ID: "c2", Text: "tag build"},
		},
		CompletedSessions: 3,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	require.NoError(t, tbl.Add(task.ID, task))
	got, err := tbl.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, task, got.(types.Task))
}

func TestTabRoundTripNullableBrowserTab(t *testing.T) {
	b := newTestBackend(t)
	tbl, err := b.GetTable(types.TabsTable)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	live := 42
	tabs := []types.Tab{
		{ID: "t1", Title: "docs", URL: "https://example.com", FolderID: "f1",
			BrowserTabID: &live, LastAccessed: now, Status: types.TabStatusOpen, Order: 0, CreatedAt: now},
		{ID: "t2", Title: "saved", URL: "https://example.org", FolderID: "",
			Status: types.TabStatusClosed, Order: 1, CreatedAt: now},
	}
	for _, tab := range tabs {
		require.NoError(t, tbl.Add(tab.ID, tab))
	}

	listed, err := tbl.List()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, tabs[0], listed[0].(types.Tab))
	assert.Equal(t, tabs[1], listed[1].(types.Tab))
	assert.Nil(t, listed[1].(types.Tab).BrowserTabID)
}

func TestTableClear(t *testing.T) {
	b := newTestBackend(t)
	tbl, err := b.GetTable(types.NotesTable)
	require.NoError(t, err)

	now := time.Now().UTC()
	for _, id := range []string{"n1", "n2", "n3"} {
		note := types.Note{ID: id, Content: "x", Format: types.NoteFormatText, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, tbl.Add(id, note))
	}

	require.NoError(t, tbl.Clear())
	listed, err := tbl.List()
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestBackendReattachKeepsRows(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	tbl, err := b.GetTable(types.BoardsTable)
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, tbl.Add("b1", types.Board{ID: "b1", Name: "Work", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()
	tbl2, err := b2.GetTable(types.BoardsTable)
	require.NoError(t, err)
	got, err := tbl2.Get("b1")
	require.NoError(t, err)
	assert.Equal(t, "Work", got.(types.Board).Name)
}

package integration

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/porter"
	"github.com/petar-djukic/satchel/internal/sqlite"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/internal/syncer"
	"github.com/petar-djukic/satchel/pkg/types"
)

// TestDataSurvivesRestart writes through one instance, tears it down,
// and verifies a fresh instance over the same data directory hydrates
// the same state.
func TestDataSurvivesRestart(t *testing.T) {
	dataDir := t.TempDir()

	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))

	broker := bridge.NewBroker()
	background := bridge.NewBackground(broker, backend, nil, nil)
	st := store.New(backend, background)
	rec := syncer.New(st, backend, broker, nil)
	require.NoError(t, rec.Hydrate(context.Background()))

	board := st.AddBoard(types.Board{Name: "Work"}, store.OriginLocal)
	folder := st.AddFolder(types.Folder{Name: "Inbox", BoardID: board.ID}, store.OriginLocal)
	st.AddTab(types.Tab{Title: "Spec", URL: "https://example.com/spec", FolderID: folder.ID}, store.OriginLocal)
	st.Flush()
	st.Close()
	require.NoError(t, backend.Detach())

	// Restart.
	backend2 := setupCupboard(t, dataDir)
	s2 := newStack(t, backend2, bridge.NewBroker())

	boards := s2.store.Boards()
	names := make([]string, 0, len(boards))
	for _, b := range boards {
		names = append(names, b.Name)
	}
	assert.Contains(t, names, "Work")
	require.Len(t, s2.store.Folders(), 1)
	require.Len(t, s2.store.Tabs(), 1)
	assert.Equal(t, "https://example.com/spec", s2.store.Tabs()[0].URL)
}

// TestCrossInstanceBroadcast runs two instances over shared storage and
// a shared broker; a local change in one shows up in the other without
// either instance rebroadcasting it back.
func TestCrossInstanceBroadcast(t *testing.T) {
	dataDir := t.TempDir()
	cupboard := setupCupboard(t, dataDir)
	broker := bridge.NewBroker()

	a := newStack(t, cupboard, broker)
	b := newStack(t, cupboard, broker)

	board := a.store.AddBoard(types.Board{Name: "Shared"}, store.OriginLocal)

	assert.Eventually(t, func() bool {
		for _, got := range b.store.Boards() {
			if got.ID == board.ID {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond, "second instance never saw the broadcast")

	// Cascading deletes converge too.
	folder := a.store.AddFolder(types.Folder{Name: "Temp", BoardID: board.ID}, store.OriginLocal)
	tab := a.store.AddTab(types.Tab{Title: "T", FolderID: folder.ID}, store.OriginLocal)
	assert.Eventually(t, func() bool {
		return len(b.store.Tabs()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	a.store.DeleteFolder(folder.ID, false, "", store.OriginLocal)
	assert.Eventually(t, func() bool {
		if len(b.store.Folders()) != 0 {
			return false
		}
		for _, got := range b.store.Tabs() {
			if got.ID == tab.ID {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond, "folder cascade never converged")
}

// TestImportTriggersReloadEverywhere imports a dataset through one
// instance and verifies another instance on the same broker reloads.
func TestImportTriggersReloadEverywhere(t *testing.T) {
	// Source dataset.
	srcDir := t.TempDir()
	srcCupboard := setupCupboard(t, srcDir)
	src := newStack(t, srcCupboard, bridge.NewBroker())
	src.store.AddBoard(types.Board{Name: "Exported"}, store.OriginLocal)
	src.store.AddTask(types.Task{Title: "Carry me"}, store.OriginLocal)

	var buf bytes.Buffer
	require.NoError(t, porter.New(src.store, src.cupboard, src.broker, nil).Export(&buf))

	// Destination: two instances over one storage and broker.
	dstDir := t.TempDir()
	dstCupboard := setupCupboard(t, dstDir)
	broker := bridge.NewBroker()
	first := newStack(t, dstCupboard, broker)
	second := newStack(t, dstCupboard, broker)

	p := porter.New(first.store, first.cupboard, first.broker, nil)
	require.NoError(t, p.Import(bytes.NewReader(buf.Bytes())))

	for name, s := range map[string]*stack{"importing": first, "other": second} {
		s := s
		assert.Eventually(t, func() bool {
			for _, b := range s.store.Boards() {
				if b.Name == "Exported" {
					return len(s.store.Tasks()) == 1
				}
			}
			return false
		}, 2*time.Second, 10*time.Millisecond, "%s instance never reloaded", name)
	}
}

// TestReconcilerHealsDivergence removes a record behind the store's
// back and verifies the next sweep rewrites it.
func TestReconcilerHealsDivergence(t *testing.T) {
	dataDir := t.TempDir()
	cupboard := setupCupboard(t, dataDir)
	s := newStack(t, cupboard, bridge.NewBroker())

	board := s.store.AddBoard(types.Board{Name: "Healed"}, store.OriginLocal)
	s.store.Flush()

	tbl, err := cupboard.GetTable(types.BoardsTable)
	require.NoError(t, err)
	require.NoError(t, tbl.Delete(board.ID))

	require.NoError(t, s.syncer.Reconcile(types.BoardsTable))

	_, err = tbl.Get(board.ID)
	assert.NoError(t, err, "sweep must restore the in-memory record")
}

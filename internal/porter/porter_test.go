package porter

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/sqlite"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/internal/syncer"
	"github.com/petar-djukic/satchel/pkg/types"
)

type fixture struct {
	cupboard types.Cupboard
	store    *store.Store
	broker   *bridge.Broker
	porter   *Porter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { _ = backend.Detach() })
	broker := bridge.NewBroker()
	st := store.New(backend, nil)
	t.Cleanup(st.Close)
	return &fixture{
		cupboard: backend,
		store:    st,
		broker:   broker,
		porter:   New(st, backend, broker, nil),
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newFixture(t)
	board := src.store.AddBoard(types.Board{Name: "Projects", Color: "#112233"}, store.OriginLocal)
	folder := src.store.AddFolder(types.Folder{Name: "Research", BoardID: board.ID}, store.OriginLocal)
	src.store.AddTab(types.Tab{Title: "Docs", URL: "https://example.com", FolderID: folder.ID}, store.OriginLocal)
	src.store.AddTask(types.Task{Title: "Read paper", BoardID: board.ID}, store.OriginLocal)
	src.store.AddNote(types.Note{Content: "notes", BoardID: board.ID}, store.OriginLocal)
	src.store.AddSession(types.Session{Name: "Morning", StartTime: time.Now()}, store.OriginLocal)

	var buf bytes.Buffer
	require.NoError(t, src.porter.Export(&buf))

	dst := newFixture(t)
	require.NoError(t, dst.porter.Import(bytes.NewReader(buf.Bytes())))

	// Importing writes storage; hydrate a reconciler to load it.
	r := syncer.New(dst.store, dst.cupboard, dst.broker, nil)
	require.NoError(t, r.Hydrate(context.Background()))

	require.Len(t, dst.store.Boards(), 1)
	assert.Equal(t, "Projects", dst.store.Boards()[0].Name)
	require.Len(t, dst.store.Folders(), 1)
	require.Len(t, dst.store.Tabs(), 1)
	assert.Equal(t, "https://example.com", dst.store.Tabs()[0].URL)
	require.Len(t, dst.store.Tasks(), 1)
	require.Len(t, dst.store.Notes(), 1)
	require.Len(t, dst.store.Sessions(), 1)
}

func TestImportVersionMismatchLeavesDataIntact(t *testing.T) {
	f := newFixture(t)
	f.store.AddBoard(types.Board{Name: "Keep"}, store.OriginLocal)
	f.store.Flush()

	doc := `{"version":"0.9","timestamp":"2025-01-01T00:00:00Z","data":{}}`
	err := f.porter.Import(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrVersionMismatch)

	tbl, err := f.cupboard.GetTable(types.BoardsTable)
	require.NoError(t, err)
	rows, err := tbl.List()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "failed import must not clear storage")
}

func TestImportMalformedDocument(t *testing.T) {
	f := newFixture(t)
	assert.Error(t, f.porter.Import(strings.NewReader("{not json")))
	assert.Error(t, f.porter.Import(strings.NewReader(`{"version":"1.0","bogus":1}`)))
}

func TestImportIsDestructive(t *testing.T) {
	f := newFixture(t)
	f.store.AddBoard(types.Board{Name: "Old"}, store.OriginLocal)
	f.store.Flush()

	doc := Document{
		Version:   Version,
		Timestamp: time.Now(),
		Data: Data{
			Boards: []types.Board{{ID: "b-new", Name: "New"}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, marshalDoc(&buf, doc))
	require.NoError(t, f.porter.Import(&buf))

	tbl, err := f.cupboard.GetTable(types.BoardsTable)
	require.NoError(t, err)
	rows, err := tbl.List()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "New", rows[0].(types.Board).Name)
}

func TestImportPublishesDataImported(t *testing.T) {
	f := newFixture(t)
	listener := f.broker.Subscribe()

	doc := Document{Version: Version, Timestamp: time.Now()}
	var buf bytes.Buffer
	require.NoError(t, marshalDoc(&buf, doc))
	require.NoError(t, f.porter.Import(&buf))

	select {
	case msg := <-listener:
		_, ok := msg.(types.DataImported)
		assert.True(t, ok, "expected DataImported, got %T", msg)
	default:
		t.Fatal("no broadcast after import")
	}
}

func marshalDoc(buf *bytes.Buffer, doc Document) error {
	return json.NewEncoder(buf).Encode(doc)
}

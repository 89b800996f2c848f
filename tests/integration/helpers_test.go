// Package integration exercises the full stack: sqlite storage, the
// in-memory store, the background bridge, and the sync reconciler
// wired together the way the CLI wires them.
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/sqlite"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/internal/syncer"
	"github.com/petar-djukic/satchel/pkg/types"
)

// stack is one running instance: storage, store, bridge, reconciler.
type stack struct {
	cupboard types.Cupboard
	broker   *bridge.Broker
	store    *store.Store
	syncer   *syncer.Reconciler
}

// setupCupboard creates a backend attached to an isolated temp directory.
func setupCupboard(t *testing.T, dataDir string) types.Cupboard {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

// newStack assembles and hydrates a full instance over the given
// storage and broker. Instances sharing a broker see each other's
// broadcasts, like multiple open copies of the UI.
func newStack(t *testing.T, cupboard types.Cupboard, broker *bridge.Broker) *stack {
	t.Helper()
	background := bridge.NewBackground(broker, cupboard, nil, nil)
	st := store.New(cupboard, background)
	t.Cleanup(st.Close)
	rec := syncer.New(st, cupboard, broker, nil)
	require.NoError(t, rec.Hydrate(context.Background()))
	rec.Start()
	t.Cleanup(rec.Stop)
	return &stack{cupboard: cupboard, broker: broker, store: st, syncer: rec}
}

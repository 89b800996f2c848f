// Package syncer glues the in-memory store to persistent storage and
// to the background broadcast channel. It hydrates the store once at
// startup, sweeps each entity table back into convergence after every
// in-memory change, and applies inbound broadcasts through the silent
// (remote-origin) mutation path so nothing echoes back out.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/pkg/types"
)

// Reconciler owns the hydration, sweep, and inbound-application
// protocols for one UI instance.
type Reconciler struct {
	store    *store.Store
	cupboard types.Cupboard
	broker   *bridge.Broker
	log      logrus.FieldLogger

	hydrateOnce sync.Once
	hydrated    chan struct{}

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// New creates a Reconciler. broker may be nil when no background
// service is attached; Start then only watches local changes.
func New(st *store.Store, cupboard types.Cupboard, broker *bridge.Broker, log logrus.FieldLogger) *Reconciler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reconciler{
		store:    st,
		cupboard: cupboard,
		broker:   broker,
		log:      log.WithField("component", "syncer"),
		hydrated: make(chan struct{}),
		stop:     make(chan struct{}),
	}
}

// Hydrated is closed once the initial load has settled. Consumers that
// must not run against a half-loaded store (default-board creation,
// export) wait on it.
func (r *Reconciler) Hydrated() <-chan struct{} {
	return r.hydrated
}

// Hydrate fetches all synced tables in parallel and applies every
// record through the silent path: hydration is not a user action and
// must not notify the background. Once the fetches settle the
// hydration signal fires and, if the store was confirmed empty, the
// default board is materialized. Only runs once; later calls return
// nil immediately.
func (r *Reconciler) Hydrate(ctx context.Context) error {
	var firstErr error
	r.hydrateOnce.Do(func() {
		var wg sync.WaitGroup
		errCh := make(chan error, len(types.SyncedTableNames))

		for _, kind := range types.SyncedTableNames {
			wg.Add(1)
			go func(kind string) {
				defer wg.Done()
				if err := r.hydrateTable(kind); err != nil {
					errCh <- fmt.Errorf("hydrate %s: %w", kind, err)
				}
			}(kind)
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			r.log.WithError(err).Error("hydration fetch failed")
			if firstErr == nil {
				firstErr = err
			}
		}

		close(r.hydrated)

		// The one-shot bootstrap: only now is an empty boards
		// collection known to mean an empty store rather than a fetch
		// still in flight. Skipped when any fetch failed, since
		// emptiness was not confirmed.
		if firstErr == nil {
			r.store.EnsureDefaultBoard()
		}
	})
	return firstErr
}

func (r *Reconciler) hydrateTable(kind string) error {
	tbl, err := r.cupboard.GetTable(kind)
	if err != nil {
		return err
	}
	rows, err := tbl.List()
	if err != nil {
		return err
	}
	for _, row := range rows {
		r.store.ApplyRemoteAdd(kind, row)
	}
	return nil
}

// Start launches the watch loop: local store changes trigger a sweep
// for the changed kind, inbound broadcasts are applied silently. Stop
// tears the loop down.
func (r *Reconciler) Start() {
	changes := r.store.Subscribe()
	var inbound chan types.Message
	if r.broker != nil {
		inbound = r.broker.Subscribe()
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.store.Unsubscribe(changes)
		if inbound != nil {
			defer r.broker.Unsubscribe(inbound)
		}
		for {
			select {
			case c := <-changes:
				if !isSyncedKind(c.Kind) {
					continue
				}
				if err := r.Reconcile(c.Kind); err != nil {
					r.log.WithError(err).WithField("kind", c.Kind).Warn("reconcile sweep failed")
				}
			case m, ok := <-inbound:
				if !ok {
					inbound = nil
					continue
				}
				r.Apply(m)
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop terminates the watch loop. Idempotent.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
}

func isSyncedKind(kind string) bool {
	for _, k := range types.SyncedTableNames {
		if k == kind {
			return true
		}
	}
	return false
}

// Reconcile converges the persisted table for kind to the in-memory
// collection: persisted ids absent from memory are deleted, and every
// in-memory record is upserted update-first with an add fallback. The
// sweep redoes work for unchanged records; that redundancy is what
// makes it self-healing — any divergence, whatever its cause, is gone
// after one pass.
func (r *Reconciler) Reconcile(kind string) error {
	tbl, err := r.cupboard.GetTable(kind)
	if err != nil {
		return err
	}
	rows, err := tbl.List()
	if err != nil {
		return err
	}

	memory := r.snapshot(kind)
	inMemory := make(map[string]bool, len(memory))
	for _, rec := range memory {
		inMemory[rec.EntityID()] = true
	}

	var firstErr error
	for _, row := range rows {
		ent, ok := row.(types.Entity)
		if !ok {
			continue
		}
		if inMemory[ent.EntityID()] {
			continue
		}
		if err := tbl.Delete(ent.EntityID()); err != nil && !errors.Is(err, types.ErrNotFound) {
			r.log.WithError(err).WithField("id", ent.EntityID()).Warn("reconcile delete failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	for _, rec := range memory {
		id := rec.EntityID()
		err := tbl.Update(id, rec)
		if errors.Is(err, types.ErrNotFound) {
			err = tbl.Add(id, rec)
		}
		if err != nil {
			r.log.WithError(err).WithField("id", id).Warn("reconcile upsert failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// ReconcileAll sweeps every synced table once.
func (r *Reconciler) ReconcileAll() error {
	var firstErr error
	for _, kind := range types.SyncedTableNames {
		if err := r.Reconcile(kind); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Reconciler) snapshot(kind string) []types.Entity {
	var out []types.Entity
	switch kind {
	case types.BoardsTable:
		for _, e := range r.store.Boards() {
			out = append(out, e)
		}
	case types.FoldersTable:
		for _, e := range r.store.Folders() {
			out = append(out, e)
		}
	case types.TabsTable:
		for _, e := range r.store.Tabs() {
			out = append(out, e)
		}
	case types.TasksTable:
		for _, e := range r.store.Tasks() {
			out = append(out, e)
		}
	case types.NotesTable:
		for _, e := range r.store.Notes() {
			out = append(out, e)
		}
	case types.SessionsTable:
		for _, e := range r.store.Sessions() {
			out = append(out, e)
		}
	}
	return out
}

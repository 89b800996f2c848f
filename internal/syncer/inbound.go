package syncer

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// Apply dispatches one inbound broadcast. Adds are presence-checked
// (inside the remote add path) so the echo of a locally-originated
// change lands as a no-op; updates reapply unconditionally; deletes
// remove silently. Malformed messages fall through without effect.
func (r *Reconciler) Apply(m types.Message) {
	switch v := m.(type) {
	case types.EntityChange:
		switch v.Op {
		case types.OpAdded:
			if v.Entity == nil {
				return
			}
			r.store.ApplyRemoteAdd(v.Kind, v.Entity)
		case types.OpUpdated:
			if v.Entity == nil {
				return
			}
			r.store.ApplyRemoteUpdate(v.Kind, v.Entity)
		case types.OpDeleted:
			if v.ID == "" {
				return
			}
			r.store.ApplyRemoteDelete(v.Kind, v.ID)
		}
	case types.DataImported:
		// A bulk import replaced everything underneath us. Incremental
		// reconciliation cannot express that; discard and reload.
		if err := r.Reload(); err != nil {
			r.log.WithError(err).Error("reload after import failed")
		}
	}
}

// Reload drops all in-memory state and re-hydrates from storage. Used
// after a destructive import.
func (r *Reconciler) Reload() error {
	r.store.Reset()
	var firstErr error
	for _, kind := range types.SyncedTableNames {
		if err := r.hydrateTable(kind); err != nil {
			r.log.WithError(err).WithField("kind", kind).Error("reload fetch failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr == nil {
		r.store.EnsureDefaultBoard()
	}
	return firstErr
}

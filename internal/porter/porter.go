// Package porter implements whole-dataset export and import as a
// single JSON document.
package porter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/pkg/types"
)

// Version is the document format version accepted by Import.
const Version = "1.0"

// ErrVersionMismatch is returned when an imported document carries a
// format version other than Version. The check runs before any data is
// touched.
var ErrVersionMismatch = errors.New("unsupported export version")

// Document is the export file layout.
type Document struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Data      Data      `json:"data"`
}

// Data holds every entity collection in the dataset.
type Data struct {
	Boards   []types.Board       `json:"boards"`
	Folders  []types.Folder      `json:"folders"`
	Tabs     []types.Tab         `json:"tabs"`
	Tasks    []types.Task        `json:"tasks"`
	Notes    []types.Note        `json:"notes"`
	Sessions []types.Session     `json:"sessions"`
	History  []types.HistoryItem `json:"history"`
}

// Porter moves datasets between the live store and JSON documents.
// Export reads the in-memory snapshot; Import writes storage directly
// and announces the replacement so every instance reloads.
type Porter struct {
	store    *store.Store
	cupboard types.Cupboard
	broker   *bridge.Broker
	log      logrus.FieldLogger
	now      func() time.Time
}

// New creates a Porter. broker may be nil when no other instances need
// notifying.
func New(st *store.Store, cupboard types.Cupboard, broker *bridge.Broker, log logrus.FieldLogger) *Porter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Porter{
		store:    st,
		cupboard: cupboard,
		broker:   broker,
		log:      log.WithField("component", "porter"),
		now:      time.Now,
	}
}

// Snapshot builds an export document from the store's current state.
func (p *Porter) Snapshot() Document {
	return Document{
		Version:   Version,
		Timestamp: p.now().UTC(),
		Data: Data{
			Boards:   p.store.Boards(),
			Folders:  p.store.Folders(),
			Tabs:     p.store.Tabs(),
			Tasks:    p.store.Tasks(),
			Notes:    p.store.Notes(),
			Sessions: p.store.Sessions(),
			History:  p.store.History(),
		},
	}
}

// Export writes the current dataset to w as indented JSON.
func (p *Porter) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.Snapshot()); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// Import replaces the entire dataset with the document read from r.
// The version check and full decode happen before any mutation; after
// that the import is destructive, clearing every table and writing the
// document's records. On success a data-imported broadcast tells every
// instance to reload from storage.
func (p *Porter) Import(r io.Reader) error {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decoding import: %w", err)
	}
	if doc.Version != Version {
		return fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, doc.Version, Version)
	}

	tables := make(map[string]types.Table, len(types.StandardTableNames))
	for _, name := range types.StandardTableNames {
		tbl, err := p.cupboard.GetTable(name)
		if err != nil {
			return fmt.Errorf("resolving table %s: %w", name, err)
		}
		tables[name] = tbl
	}

	for _, name := range types.StandardTableNames {
		if err := tables[name].Clear(); err != nil {
			return fmt.Errorf("clearing table %s: %w", name, err)
		}
	}

	if err := p.writeAll(tables, doc.Data); err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"boards": len(doc.Data.Boards),
		"tabs":   len(doc.Data.Tabs),
		"tasks":  len(doc.Data.Tasks),
	}).Info("import complete")
	if p.broker != nil {
		p.broker.Publish(types.DataImported{})
	}
	return nil
}

func (p *Porter) writeAll(tables map[string]types.Table, data Data) error {
	for _, b := range data.Boards {
		if err := tables[types.BoardsTable].Add(b.ID, b); err != nil {
			return fmt.Errorf("importing board %s: %w", b.ID, err)
		}
	}
	for _, f := range data.Folders {
		if err := tables[types.FoldersTable].Add(f.ID, f); err != nil {
			return fmt.Errorf("importing folder %s: %w", f.ID, err)
		}
	}
	for _, tab := range data.Tabs {
		if err := tables[types.TabsTable].Add(tab.ID, tab); err != nil {
			return fmt.Errorf("importing tab %s: %w", tab.ID, err)
		}
	}
	for _, task := range data.Tasks {
		if err := tables[types.TasksTable].Add(task.ID, task); err != nil {
			return fmt.Errorf("importing task %s: %w", task.ID, err)
		}
	}
	for _, n := range data.Notes {
		if err := tables[types.NotesTable].Add(n.ID, n); err != nil {
			return fmt.Errorf("importing note %s: %w", n.ID, err)
		}
	}
	for _, s := range data.Sessions {
		if err := tables[types.SessionsTable].Add(s.ID, s); err != nil {
			return fmt.Errorf("importing session %s: %w", s.ID, err)
		}
	}
	for _, h := range data.History {
		if err := tables[types.HistoryTable].Add(h.ID, h); err != nil {
			return fmt.Errorf("importing history item %s: %w", h.ID, err)
		}
	}
	return nil
}

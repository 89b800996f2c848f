package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/satchel/pkg/types"
)

// BrowserSource supplies browser-native data. The real extension reads
// the browser's history and tab APIs; tests and the CLI inject stubs.
type BrowserSource interface {
	History(ctx context.Context) ([]types.HistoryItem, error)
	OpenTabs(ctx context.Context) ([]types.Tab, error)
}

// emptySource is the default BrowserSource when none is injected.
type emptySource struct{}

func (emptySource) History(context.Context) ([]types.HistoryItem, error) { return nil, nil }
func (emptySource) OpenTabs(context.Context) ([]types.Tab, error)        { return nil, nil }

// Background is the long-lived service behind the broker. It outlives
// any single UI instance, answers request/response calls, accepts
// fire-and-forget notices from UI stores, and rebroadcasts resulting
// change messages to every subscriber. It is also a second mutation
// authority: it records history visits and infers sessions on its own,
// announcing them to the UI side the same way.
type Background struct {
	broker   *Broker
	cupboard types.Cupboard
	browser  BrowserSource
	log      logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]types.Session
	user     types.UserInfo
}

// NewBackground creates the background service. cupboard is used for
// the history table, which the background owns directly; browser may be
// nil.
func NewBackground(broker *Broker, cupboard types.Cupboard, browser BrowserSource, log logrus.FieldLogger) *Background {
	if browser == nil {
		browser = emptySource{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Background{
		broker:   broker,
		cupboard: cupboard,
		browser:  browser,
		log:      log.WithField("component", "background"),
		sessions: make(map[string]types.Session),
		user:     types.UserInfo{ID: "local", Name: "Local Profile"},
	}
}

// Notify accepts a fire-and-forget notice from a UI store and
// rebroadcasts the matching change message so other UI instances
// converge. The originating instance sees its own echo and suppresses
// it with a presence check.
func (bg *Background) Notify(n types.Notice) {
	switch v := n.(type) {
	case types.EntityAdded:
		if v.Kind == types.SessionsTable {
			if s, ok := v.Entity.(types.Session); ok {
				bg.rememberSession(s)
			}
		}
		bg.broker.Publish(types.EntityChange{Kind: v.Kind, Op: types.OpAdded, ID: entityID(v.Entity), Entity: v.Entity})
	case types.EntityUpdated:
		if v.Kind == types.SessionsTable {
			if s, ok := v.Entity.(types.Session); ok {
				bg.rememberSession(s)
			}
		}
		bg.broker.Publish(types.EntityChange{Kind: v.Kind, Op: types.OpUpdated, ID: entityID(v.Entity), Entity: v.Entity})
	case types.EntityDeleted:
		if v.Kind == types.SessionsTable {
			bg.forgetSession(v.ID)
		}
		bg.broker.Publish(types.EntityChange{Kind: v.Kind, Op: types.OpDeleted, ID: v.ID})
	case types.FolderDeleted:
		// The cascaded tab changes arrive as their own notices; only
		// the folder removal itself is rebroadcast here.
		bg.broker.Publish(types.EntityChange{Kind: types.FoldersTable, Op: types.OpDeleted, ID: v.ID})
	case types.TabMoved:
		bg.log.WithFields(logrus.Fields{"tab": v.TabID, "folder": v.NewFolderID}).Debug("tab moved")
	case types.ImportCompleted:
		bg.broker.Publish(types.DataImported{})
	default:
		// Unknown notices are dropped, matching the defensive
		// fall-through on the receiving side.
		bg.log.WithField("notice", n).Warn("unrecognized notice")
	}
}

func entityID(e any) string {
	if ent, ok := e.(types.Entity); ok {
		return ent.EntityID()
	}
	return ""
}

func (bg *Background) rememberSession(s types.Session) {
	bg.mu.Lock()
	bg.sessions[s.ID] = s.Clone()
	bg.mu.Unlock()
}

func (bg *Background) forgetSession(id string) {
	bg.mu.Lock()
	delete(bg.sessions, id)
	bg.mu.Unlock()
}

// History returns the persisted history table contents.
func (bg *Background) History(ctx context.Context) ([]types.HistoryItem, error) {
	tbl, err := bg.cupboard.GetTable(types.HistoryTable)
	if err != nil {
		return nil, err
	}
	rows, err := tbl.List()
	if err != nil {
		return nil, err
	}
	items := make([]types.HistoryItem, 0, len(rows))
	for _, row := range rows {
		if h, ok := row.(types.HistoryItem); ok {
			items = append(items, h)
		}
	}
	return items, nil
}

// BrowserHistory reads the browser's native history through the
// injected source, persists any entries not yet in the history table,
// and returns the full set.
func (bg *Background) BrowserHistory(ctx context.Context) ([]types.HistoryItem, error) {
	native, err := bg.browser.History(ctx)
	if err != nil {
		return nil, err
	}
	tbl, err := bg.cupboard.GetTable(types.HistoryTable)
	if err != nil {
		return nil, err
	}
	for _, h := range native {
		if h.ID == "" {
			h.ID = newID()
		}
		if h.CreatedAt.IsZero() {
			h.CreatedAt = time.Now().UTC()
		}
		if err := tbl.Add(h.ID, h); err != nil && !errors.Is(err, types.ErrDuplicateID) {
			bg.log.WithError(err).WithField("url", h.URL).Warn("persist history item")
		}
	}
	return bg.History(ctx)
}

// Sessions returns the sessions the background has seen, newest first.
func (bg *Background) Sessions(ctx context.Context) ([]types.Session, error) {
	bg.mu.Lock()
	defer bg.mu.Unlock()
	out := make([]types.Session, 0, len(bg.sessions))
	for _, s := range bg.sessions {
		out = append(out, s.Clone())
	}
	return out, nil
}

// UserInfo returns the profile identity.
func (bg *Background) UserInfo(ctx context.Context) (types.UserInfo, error) {
	bg.mu.Lock()
	defer bg.mu.Unlock()
	return bg.user, nil
}

// RecordVisit is an independent background mutation: it appends a
// history item to the history table and announces it to subscribers.
func (bg *Background) RecordVisit(url, title string) types.HistoryItem {
	now := time.Now().UTC()
	item := types.HistoryItem{
		ID:            newID(),
		URL:           url,
		Title:         title,
		LastVisitTime: &now,
		VisitCount:    1,
		CreatedAt:     now,
	}
	if tbl, err := bg.cupboard.GetTable(types.HistoryTable); err == nil {
		if err := tbl.Add(item.ID, item); err != nil {
			bg.log.WithError(err).WithField("url", url).Warn("persist visit")
		}
	}
	bg.broker.Publish(types.EntityChange{Kind: types.HistoryTable, Op: types.OpAdded, ID: item.ID, Entity: item})
	return item
}

// StartSession is an independent background mutation: it opens a new
// session over the given tabs and announces it. UI stores apply the
// broadcast silently and the next reconciliation persists it.
func (bg *Background) StartSession(name string, tabIDs []string) types.Session {
	now := time.Now().UTC()
	s := types.Session{
		ID:        newID(),
		Name:      name,
		TabIDs:    append([]string(nil), tabIDs...),
		StartTime: now,
		CreatedAt: now,
	}
	bg.rememberSession(s)
	bg.broker.Publish(types.EntityChange{Kind: types.SessionsTable, Op: types.OpAdded, ID: s.ID, Entity: s})
	return s
}

// EndSession closes a background-tracked session and announces the
// update. Unknown ids are ignored.
func (bg *Background) EndSession(id, summary string) {
	bg.mu.Lock()
	s, ok := bg.sessions[id]
	if ok {
		s.Close(time.Now().UTC())
		s.Summary = summary
		bg.sessions[id] = s
	}
	bg.mu.Unlock()
	if !ok {
		return
	}
	bg.broker.Publish(types.EntityChange{Kind: types.SessionsTable, Op: types.OpUpdated, ID: s.ID, Entity: s})
}

// newID generates a UUID v7 entity id, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/satchel/pkg/types"
)

// changeBuffer is the per-subscriber depth for change notifications.
// Change events carry only the entity kind, so a dropped event is
// recovered by the next one for the same kind.
const changeBuffer = 16

// Notifier delivers fire-and-forget notices to the background service.
type Notifier interface {
	Notify(types.Notice)
}

// Change tells subscribers that the collection for Kind mutated.
type Change struct {
	Kind string
}

// Store is the composed state container. One instance is wired at
// startup and injected into every consumer; there are no package-level
// singletons.
type Store struct {
	cupboard types.Cupboard
	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
	effects  *effectQueue

	boards   *collection[types.Board]
	folders  *collection[types.Folder]
	tabs     *collection[types.Tab]
	tasks    *collection[types.Task]
	notes    *collection[types.Note]
	sessions *collection[types.Session]
	history  *collection[types.HistoryItem]

	subMu sync.Mutex
	subs  map[chan Change]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger overrides the default logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a Store over the given cupboard and notifier. notifier
// may be nil when no background service is attached (the notify leg
// becomes a no-op).
func New(cupboard types.Cupboard, notifier Notifier, opts ...Option) *Store {
	s := &Store{
		cupboard: cupboard,
		notifier: notifier,
		log:      logrus.StandardLogger(),
		now:      time.Now,
		boards:   newCollection[types.Board](),
		folders:  newCollection[types.Folder](),
		tabs:     newCollection[types.Tab](),
		tasks:    newCollection[types.Task](),
		notes:    newCollection[types.Note](),
		sessions: newCollection[types.Session](),
		history:  newCollection[types.HistoryItem](),
		subs:     make(map[chan Change]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("component", "store")
	s.effects = newEffectQueue(s.log)
	return s
}

// Close stops the effect worker after draining queued effects.
func (s *Store) Close() {
	s.effects.close()
}

// Flush blocks until all currently queued effects have run. Intended
// for tests and shutdown paths.
func (s *Store) Flush() {
	s.effects.barrier()
}

// Subscribe registers a change listener.
func (s *Store) Subscribe() chan Change {
	ch := make(chan Change, changeBuffer)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch
}

// Unsubscribe removes a change listener and closes its channel.
func (s *Store) Unsubscribe(ch chan Change) {
	s.subMu.Lock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
	s.subMu.Unlock()
}

// changed fans a change event out to subscribers without blocking.
func (s *Store) changed(kind string) {
	s.subMu.Lock()
	for ch := range s.subs {
		select {
		case ch <- Change{Kind: kind}:
		default:
		}
	}
	s.subMu.Unlock()
}

// Snapshot accessors. Each returns a copy; callers never see internal
// slices.

func (s *Store) Boards() []types.Board        { return s.boards.list() }
func (s *Store) Folders() []types.Folder      { return s.folders.list() }
func (s *Store) Tabs() []types.Tab            { return s.tabs.list() }
func (s *Store) Tasks() []types.Task          { return s.tasks.list() }
func (s *Store) Notes() []types.Note          { return s.notes.list() }
func (s *Store) Sessions() []types.Session    { return s.sessions.list() }
func (s *Store) History() []types.HistoryItem { return s.history.list() }

// ResolveTabs maps weak tab references to live tabs, skipping ids that
// no longer resolve.
func (s *Store) ResolveTabs(ids []string) []types.Tab {
	out := make([]types.Tab, 0, len(ids))
	for _, id := range ids {
		if tab, ok := s.tabs.get(id); ok {
			out = append(out, tab)
		}
	}
	return out
}

// persistUpsert queues an update-then-add write for one record. Update
// first tolerates the race where the record was never inserted: on
// ErrNotFound the write falls back to an insert.
func (s *Store) persistUpsert(kind, id string, entity any) {
	s.effects.enqueue("persist "+kind, func() error {
		tbl, err := s.cupboard.GetTable(kind)
		if err != nil {
			return err
		}
		err = tbl.Update(id, entity)
		if errors.Is(err, types.ErrNotFound) {
			err = tbl.Add(id, entity)
		}
		return err
	})
}

// persistDelete queues a removal for one record. A record already gone
// from storage is success, not failure.
func (s *Store) persistDelete(kind, id string) {
	s.effects.enqueue("delete "+kind, func() error {
		tbl, err := s.cupboard.GetTable(kind)
		if err != nil {
			return err
		}
		if err := tbl.Delete(id); err != nil && !errors.Is(err, types.ErrNotFound) {
			return err
		}
		return nil
	})
}

// notify queues a fire-and-forget notice to the background service.
func (s *Store) notify(n types.Notice) {
	if s.notifier == nil {
		return
	}
	s.effects.enqueue("notify", func() error {
		s.notifier.Notify(n)
		return nil
	})
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

package store

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// effectBuffer is the queue depth for outbound effects. When the queue
// is full the effect is dropped with a warning; the next reconciliation
// sweep re-attempts the write, so a drop costs latency, not data.
const effectBuffer = 256

// effect is one queued outbound side effect of a local mutation.
type effect struct {
	name string
	run  func() error
}

// effectQueue runs effects on a single worker goroutine, in order.
// Failures are logged and swallowed: steady-state storage or messaging
// errors never reach the caller.
type effectQueue struct {
	ch   chan effect
	log  logrus.FieldLogger
	wg   sync.WaitGroup
	once sync.Once
}

func newEffectQueue(log logrus.FieldLogger) *effectQueue {
	q := &effectQueue{
		ch:  make(chan effect, effectBuffer),
		log: log,
	}
	q.wg.Add(1)
	go q.worker()
	return q
}

func (q *effectQueue) worker() {
	defer q.wg.Done()
	for e := range q.ch {
		if e.run == nil {
			continue
		}
		if err := e.run(); err != nil {
			q.log.WithError(err).WithField("effect", e.name).Warn("outbound effect failed")
		}
	}
}

// enqueue queues an effect without blocking. A full queue drops the
// effect.
func (q *effectQueue) enqueue(name string, run func() error) {
	select {
	case q.ch <- effect{name: name, run: run}:
	default:
		q.log.WithField("effect", name).Warn("effect queue full, dropping")
	}
}

// barrier blocks until every effect enqueued before the call has run.
func (q *effectQueue) barrier() {
	done := make(chan struct{})
	q.ch <- effect{name: "barrier", run: func() error {
		close(done)
		return nil
	}}
	<-done
}

// close stops the worker after the queued effects drain. Idempotent.
func (q *effectQueue) close() {
	q.once.Do(func() {
		close(q.ch)
	})
	q.wg.Wait()
}

// Package bridge hosts the long-lived background service and the
// broadcast broker connecting it to any number of UI instances. The
// background service is the authority for browser-derived data
// (history, live tabs, inferred sessions); UI stores send it
// fire-and-forget notices and receive change broadcasts back.
package bridge

import (
	"sync"

	"github.com/petar-djukic/satchel/pkg/types"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber
// that falls this far behind loses messages; the reconciliation sweep
// repairs any divergence that causes.
const subscriberBuffer = 64

// Broker fans broadcast messages out to subscribers. Publish never
// blocks: a full subscriber channel drops the message instead of
// stalling the publisher.
type Broker struct {
	mu   sync.Mutex
	subs map[chan types.Message]struct{}
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan types.Message]struct{})}
}

// Subscribe registers a new listener and returns its channel.
func (b *Broker) Subscribe() chan types.Message {
	ch := make(chan types.Message, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broker) Unsubscribe(ch chan types.Message) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers msg to every subscriber without blocking.
func (b *Broker) Publish(msg types.Message) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- msg:
		default:
		}
	}
	b.mu.Unlock()
}

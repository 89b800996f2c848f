package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/satchel/pkg/types"
)

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe()
	c := b.Subscribe()

	msg := types.EntityChange{Kind: types.BoardsTable, Op: types.OpAdded, ID: "b1"}
	b.Publish(msg)

	assert.Equal(t, msg, (<-a).(types.EntityChange))
	assert.Equal(t, msg, (<-c).(types.EntityChange))
}

func TestBrokerPublishNeverBlocks(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	// Overfill the subscriber buffer; the excess is dropped, not
	// deadlocked on.
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(types.DataImported{})
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, drained)
}

func TestBrokerUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	_, open := <-ch
	require.False(t, open)

	// Unsubscribing twice must not panic on a double close.
	b.Unsubscribe(ch)
	b.Publish(types.DataImported{})
}

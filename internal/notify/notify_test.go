package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishInvokesInSubscriptionOrder(t *testing.T) {
	n := New()

	var order []string
	n.Subscribe(func() { order = append(order, "first") })
	n.Subscribe(func() { order = append(order, "second") })
	n.Subscribe(func() { order = append(order, "third") })

	n.Publish()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublishInvokesEachObserverOncePerCall(t *testing.T) {
	n := New()

	calls := 0
	n.Subscribe(func() { calls++ })

	n.Publish()
	n.Publish()

	assert.Equal(t, 2, calls)
}

func TestPublishWithNoObservers(t *testing.T) {
	n := New()
	assert.NotPanics(t, func() { n.Publish() })
}

func TestCancelStopsDelivery(t *testing.T) {
	n := New()

	var order []string
	n.Subscribe(func() { order = append(order, "keep") })
	sub := n.Subscribe(func() { order = append(order, "cancelled") })

	sub.Cancel()
	n.Publish()

	assert.Equal(t, []string{"keep"}, order)
}

func TestCancelIsIdempotent(t *testing.T) {
	n := New()

	calls := 0
	sub := n.Subscribe(func() { calls++ })
	survivor := n.Subscribe(func() { calls++ })

	sub.Cancel()
	sub.Cancel()
	n.Publish()

	assert.Equal(t, 1, calls)
	survivor.Cancel()
}

func TestObserverMaySubscribeDuringPublish(t *testing.T) {
	n := New()

	lateCalls := 0
	n.Subscribe(func() {
		n.Subscribe(func() { lateCalls++ })
	})

	// The late subscriber joins mid-publish and must not run this round.
	n.Publish()
	assert.Equal(t, 0, lateCalls)

	n.Publish()
	assert.Equal(t, 1, lateCalls)
}

package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID uint) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 8)}
}

func TestHubPublishReachesAllUserConnections(t *testing.T) {
	hub := NewHub()
	a1 := newTestClient(1)
	a2 := newTestClient(1)
	b := newTestClient(2)
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)

	hub.Publish(1, Event{Type: EventNotification, Payload: map[string]string{"hello": "world"}})

	for _, c := range []*Client{a1, a2} {
		select {
		case raw := <-c.Send:
			var ev Event
			require.NoError(t, json.Unmarshal(raw, &ev))
			assert.Equal(t, EventNotification, ev.Type)
		default:
			t.Fatal("expected event on client channel")
		}
	}
	assert.Empty(t, b.Send, "other users must not receive the event")
}

func TestHubCloseUnregisters(t *testing.T) {
	hub := NewHub()
	c := newTestClient(7)
	hub.Register(c)
	assert.Equal(t, 1, hub.ConnectionCount(7))

	c.Close()
	assert.Equal(t, 0, hub.ConnectionCount(7))

	// Close is idempotent.
	c.Close()

	// Publishing after close must not panic or deliver.
	hub.Publish(7, Event{Type: EventFriendRequest})
}

func TestHubSkipsSlowConsumer(t *testing.T) {
	hub := NewHub()
	slow := &Client{UserID: 3, Send: make(chan []byte)} // unbuffered, nobody reading
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.Publish(3, Event{Type: EventNotification})
		close(done)
	}()
	select {
	case <-done:
	case <-slow.Send:
		t.Fatal("event should have been dropped, not delivered")
	}
}

package websocket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(hub *Hub, userID string) *Client {
	return &Client{
		hub:    hub,
		Send:   make(chan []byte, 256),
		UserID: userID,
	}
}

func TestHubTargetedSendDuringConnectChurn(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Targeted sends race against clients connecting and disconnecting;
	// the run loop must serialize all map access.
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			client := newTestClient(hub, "user-1")
			hub.Register <- client
			hub.Unregister <- client
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.BroadcastTo("user-1", []byte(`{"action":"notification"}`))
		}
	}()

	wg.Wait()
}

func TestHubTargetedSendReachesOnlySubscribedUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	owner := newTestClient(hub, "user-1")
	other := newTestClient(hub, "user-2")
	hub.Register <- owner
	hub.Register <- other

	hub.BroadcastTo("user-1", []byte("hello"))

	assert.Equal(t, []byte("hello"), <-owner.Send)
	assert.Empty(t, other.Send)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	owner := newTestClient(hub, "user-1")
	anon := newTestClient(hub, "")
	hub.Register <- owner
	hub.Register <- anon

	hub.Broadcast <- []byte("everyone")

	assert.Equal(t, []byte("everyone"), <-owner.Send)
	assert.Equal(t, []byte("everyone"), <-anon.Send)
}

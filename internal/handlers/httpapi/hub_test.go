package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubBroadcastReachesRoundWatchers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	watcher := &hubClient{roundID: "round-1", send: make(chan []byte, 1)}
	other := &hubClient{roundID: "round-2", send: make(chan []byte, 1)}
	hub.register <- watcher
	hub.register <- other

	hub.BroadcastRound("round-1", []byte("update"))

	select {
	case data := <-watcher.send:
		assert.Equal(t, "update", string(data))
	case <-time.After(time.Second):
		t.Fatal("watcher never received the broadcast")
	}

	select {
	case data := <-other.send:
		t.Fatalf("other round's watcher received %q", data)
	default:
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &hubClient{roundID: "round-1", send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}

func TestHubDropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Zero-capacity send channel: the first broadcast cannot be
	// delivered, so the hub must drop the client instead of blocking.
	slow := &hubClient{roundID: "round-1", send: make(chan []byte)}
	hub.register <- slow

	hub.BroadcastRound("round-1", []byte("update"))

	select {
	case _, ok := <-slow.send:
		assert.False(t, ok, "slow client's channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("slow client was never dropped")
	}
}

package httpapi

import "sync"

// hubClient is one websocket subscriber, keyed by the round it watches
type hubClient struct {
	roundID string
	send    chan []byte
}

// hubMessage is a payload addressed to every watcher of one round
type hubMessage struct {
	roundID string
	data    []byte
}

// Hub fans round updates out to websocket subscribers. All map mutation
// happens on the Run goroutine.
type Hub struct {
	clients    map[string]map[*hubClient]bool
	broadcast  chan *hubMessage
	register   chan *hubClient
	unregister chan *hubClient
	mu         sync.RWMutex
}

// NewHub creates a hub. Call Run in its own goroutine before use.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*hubClient]bool),
		broadcast:  make(chan *hubMessage, 256),
		register:   make(chan *hubClient),
		unregister: make(chan *hubClient),
	}
}

// Run is the hub's event loop. It blocks until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.roundID] == nil {
				h.clients[client.roundID] = make(map[*hubClient]bool)
			}
			h.clients[client.roundID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeClient(client)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[msg.roundID] {
				select {
				case client.send <- msg.data:
				default:
					// Slow consumer; drop it rather than stall the loop.
					h.removeClient(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// removeClient must be called with the lock held
func (h *Hub) removeClient(client *hubClient) {
	watchers, ok := h.clients[client.roundID]
	if !ok {
		return
	}
	if _, ok := watchers[client]; !ok {
		return
	}
	delete(watchers, client)
	close(client.send)
	if len(watchers) == 0 {
		delete(h.clients, client.roundID)
	}
}

// BroadcastRound sends data to every subscriber of the given round
func (h *Hub) BroadcastRound(roundID string, data []byte) {
	h.broadcast <- &hubMessage{roundID: roundID, data: data}
}

// Package live fans record-change events out to websocket clients watching
// a trip. Clients do not push state through the socket; every event is a
// hint to refetch the day-view projection.
package live

import "sync"

type Client struct {
	Send   chan []byte
	TripID string
	UserID string
}

type broadcastMsg struct {
	TripID string
	Data   []byte
}

type Hub struct {
	trips      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		trips:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.trips[c.TripID] == nil {
				h.trips[c.TripID] = make(map[*Client]bool)
			}
			h.trips[c.TripID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.trips[c.TripID]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.trips[m.TripID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.trips[m.TripID], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for trip, conns := range h.trips {
				for c := range conns {
					close(c.Send)
				}
				delete(h.trips, trip)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and closes every client send channel.
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast sends data to every client watching the trip.
func (h *Hub) Broadcast(tripID string, data []byte) {
	h.broadcast <- broadcastMsg{TripID: tripID, Data: data}
}

package websocket

import (
	"sync"

	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

// Hub maintains the set of active clients and broadcasts catalog events to
// them. Clients never send data that the hub acts on.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	log := logging.With("websocket_hub")
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Debug().Str("remote", client.remoteAddr()).Int("clients", len(h.clients)).Msg("client registered")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Debug().Str("remote", client.remoteAddr()).Int("clients", len(h.clients)).Msg("client unregistered")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the fan-out.
					close(client.send)
					delete(h.clients, client)
					log.Warn().Str("remote", client.remoteAddr()).Msg("dropping slow websocket client")
				}
			}
		case <-h.stop:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			log.Info().Msg("websocket hub stopped")
			return
		}
	}
}

// BroadcastMessage queues message for every connected client. It returns
// immediately once the hub has been stopped.
func (h *Hub) BroadcastMessage(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

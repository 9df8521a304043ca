package websocket

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub tracks connected clients by user id and fans engagement events out
// to them. One user may hold several connections (multiple tabs).
type Hub struct {
	clients map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client

	mu  sync.RWMutex
	log *logrus.Logger
}

// Message is one event pushed to clients. An empty UserID broadcasts to
// everyone connected.
type Message struct {
	UserID  string                 `json:"-"`
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

// NewHub creates an empty hub.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run processes register/unregister/broadcast events until the process
// exits. Call it from its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
			h.log.WithField("user_id", client.UserID).Debug("websocket client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
			h.log.WithField("user_id", client.UserID).Debug("websocket client unregistered")

		case message := <-h.broadcast:
			h.mu.RLock()
			var dead []*Client
			if message.UserID != "" {
				dead = h.deliver(h.clients[message.UserID], message)
			} else {
				for _, clients := range h.clients {
					dead = append(dead, h.deliver(clients, message)...)
				}
			}
			h.mu.RUnlock()
			if len(dead) > 0 {
				h.removeClients(dead)
			}
		}
	}
}

// deliver pushes the message to every connection in the set and returns
// the connections whose send buffer was full. It only reads the client
// maps; callers hold at least a read lock and remove the dead
// connections afterwards under the write lock.
func (h *Hub) deliver(clients map[*Client]bool, message *Message) []*Client {
	var dead []*Client
	for client := range clients {
		select {
		case client.send <- message:
		default:
			dead = append(dead, client)
		}
	}
	return dead
}

func (h *Hub) removeClients(dead []*Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range dead {
		clients, ok := h.clients[client.UserID]
		if !ok {
			continue
		}
		if _, ok := clients[client]; !ok {
			continue
		}
		delete(clients, client)
		close(client.send)
		if len(clients) == 0 {
			delete(h.clients, client.UserID)
		}
	}
}

// SendToUser queues an event for one user's connections. Events are
// dropped rather than blocking when the hub is saturated.
func (h *Hub) SendToUser(userID, eventType string, payload map[string]interface{}) {
	message := &Message{
		UserID:  userID,
		Type:    eventType,
		Payload: payload,
	}

	select {
	case h.broadcast <- message:
	default:
		h.log.WithField("user_id", userID).Warn("broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of open connections for a user.
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

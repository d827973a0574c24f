package websocket

import "github.com/rs/zerolog/log"

// targetedMessage is a message addressed to one user's connections.
type targetedMessage struct {
	userID  string
	message []byte
}

// Hub maintains the set of active clients and broadcasts messages to them.
// The client and subscription maps are owned by the Run goroutine; all
// sends, including targeted ones, go through its channels.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Inbound messages for global broadcast.
	Broadcast chan []byte

	// Inbound messages for a single user's connections.
	targeted chan targetedMessage

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// A map of user IDs to the set of clients authenticated as that user.
	subscriptions map[string]map[*Client]bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:     make(chan []byte),
		targeted:      make(chan targetedMessage, 16),
		Register:      make(chan *Client),
		Unregister:    make(chan *Client),
		clients:       make(map[*Client]bool),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Client connected")
			// Authenticated clients are subscribed under their user ID so
			// notifications can be targeted.
			if client.UserID != "" {
				h.addSubscription(client, client.UserID)
			}
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.removeSubscription(client)
				log.Info().Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				h.deliver(client, message)
			}
		case tm := <-h.targeted:
			for client := range h.subscriptions[tm.userID] {
				h.deliver(client, tm.message)
			}
		}
	}
}

// BroadcastTo sends a message to all clients authenticated as the given user.
// Safe to call from any goroutine.
func (h *Hub) BroadcastTo(userID string, message []byte) {
	h.targeted <- targetedMessage{userID: userID, message: message}
}

// deliver hands a message to one client, dropping the client when its send
// buffer is full. Only called from the Run goroutine.
func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.Send <- message:
	default:
		close(client.Send)
		delete(h.clients, client)
		h.removeSubscription(client)
	}
}

func (h *Hub) addSubscription(client *Client, userID string) {
	if h.subscriptions[userID] == nil {
		h.subscriptions[userID] = make(map[*Client]bool)
	}
	h.subscriptions[userID][client] = true
}

func (h *Hub) removeSubscription(client *Client) {
	for userID, subs := range h.subscriptions {
		if _, ok := subs[client]; ok {
			delete(subs, client)
			if len(subs) == 0 {
				delete(h.subscriptions, userID)
			}
		}
	}
}

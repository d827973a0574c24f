package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/bizlingo/bizlingo-be/internal/auth"
	ws "github.com/bizlingo/bizlingo-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles upgrading HTTP connections to websocket
// connections feeding the live notification stream.
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins (consider tightening this in production).
		return true
	},
}

// Serve handles the websocket connection request. Connections carrying a
// valid token are subscribed under their user ID for targeted notifications;
// anonymous connections still receive global broadcasts.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if tokenStr := auth.TokenFromRequest(r); tokenStr != "" {
		if claims, err := auth.ValidateJWT(tokenStr); err == nil {
			userID = claims.UserID
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	h.hub.Register <- client

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		client.WritePump()
	}()
	go func() {
		defer wg.Done()
		client.ReadPump(h.handleIncomingWSMessage)
	}()

	// Cleanup on disconnect.
	go func() {
		wg.Wait()
		h.hub.Unregister <- client
	}()
}

// handleIncomingWSMessage processes messages received from a websocket
// client. The feed is one-way; anything the client sends is rejected.
func (h *WebSocketHandler) handleIncomingWSMessage(client *ws.Client, message []byte) {
	log.Warn().Bytes("message", message).Msg("Unexpected websocket message received")
	client.Send <- ws.NewErrorMessage("this endpoint is a read-only feed")
}

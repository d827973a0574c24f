package websocket

import (
	"encoding/json"

	"github.com/bizlingo/bizlingo-be/internal/models"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewNotificationMessage encodes a notification for the live feed.
func NewNotificationMessage(n models.Notification) []byte {
	msg, _ := json.Marshal(Message{Action: "notification", Payload: n})
	return msg
}

// NewErrorMessage encodes an error reply to a client.
func NewErrorMessage(text string) []byte {
	msg, _ := json.Marshal(Message{Action: "error", Payload: text})
	return msg
}

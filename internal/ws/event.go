package ws

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the frames exchanged on the live channel.
type Kind string

const (
	KindStatus       Kind = "status"
	KindTyping       Kind = "typing"
	KindChat         Kind = "chat"
	KindNotification Kind = "notification"
)

// Notification is the payload pushed to a user after a durable business
// event (a like, a new match, a persisted chat message).
type Notification struct {
	Type      string `json:"type"`
	From      string `json:"from,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Event is the wire envelope for every frame on the live channel, one JSON
// object per websocket message. Which fields are set depends on Kind:
//
//	status        userId, status
//	typing        to, matchId (inbound) / from, matchId (relayed)
//	chat          to, text, matchId (inbound) / from, text, matchId, createdAt (relayed)
//	notification  notification
type Event struct {
	Kind Kind `json:"kind"`

	UserID string `json:"userId,omitempty"`
	Status string `json:"status,omitempty"`

	To        string `json:"to,omitempty"`
	From      string `json:"from,omitempty"`
	MatchID   string `json:"matchId,omitempty"`
	Text      string `json:"text,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`

	Notification *Notification `json:"notification,omitempty"`
}

// Encode serializes an event for the wire.
func Encode(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

// Decode parses an inbound frame. Unknown extra fields are ignored so older
// servers stay compatible with newer clients; a structurally malformed frame
// is an error the caller is expected to drop, not a reason to close the
// connection.
func Decode(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decode frame: %w", err)
	}
	return ev, nil
}

package chat

import (
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"
)

type SendMessageRequest struct {
	MatchID    string `json:"matchId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// HistoryResponse is a match's messages plus the participant the current
// user is chatting with.
type HistoryResponse struct {
	CurrentUserID string            `json:"currentUserId"`
	OtherUser     *ChatUser         `json:"otherUser,omitempty"`
	Messages      []*models.Message `json:"messages"`
}

type ChatUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// MessageEvent is the shape published to Kafka for each stored message.
type MessageEvent struct {
	ID         string    `json:"id"`
	MatchID    string    `json:"matchId"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

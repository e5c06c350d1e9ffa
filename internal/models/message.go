package models

import "time"

// Message is one durable chat message within a match. Live delivery of the
// same content over the websocket channel is best effort and independent of
// this record.
type Message struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	MatchID    string    `gorm:"type:varchar(36);not null;index" json:"matchId"`
	SenderID   string    `gorm:"type:varchar(36);not null" json:"senderId"`
	ReceiverID string    `gorm:"type:varchar(36);not null" json:"receiverId"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}

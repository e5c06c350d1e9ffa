package models

import "time"

// Notification types.
const (
	NotificationLike    = "like"
	NotificationMatch   = "match"
	NotificationMessage = "message"
)

// Notification is the durable record of a business event addressed to a
// user. The live push over the websocket channel may or may not reach them;
// this row is what they discover on next login.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	FromID    string    `gorm:"type:varchar(36);not null" json:"fromId"`
	Message   string    `gorm:"size:512" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

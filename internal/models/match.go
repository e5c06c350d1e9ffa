package models

import "time"

// Match links two users who liked each other. The pair is stored in a fixed
// order (UserAID < UserBID) so the unique index rules out duplicates.
type Match struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserAID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_match_pair" json:"userAId"`
	UserBID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_match_pair" json:"userBId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Match) TableName() string {
	return "matches"
}

// OrderPair normalizes a user id pair for match storage and lookup.
func OrderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

package match

import "time"

// MatchView is one match shaped from the current user's perspective: the
// other participant plus when the match happened.
type MatchView struct {
	ID        string    `json:"id"`
	User      MatchUser `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type MatchUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	Age            int    `json:"age,omitempty"`
	City           string `json:"city,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

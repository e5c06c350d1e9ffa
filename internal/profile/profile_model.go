package profile

import "time"

// ProfileCard is the public slice of a user shown in discovery and lists.
type ProfileCard struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName,omitempty"`
	Age            int      `json:"age,omitempty"`
	City           string   `json:"city,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	MatchScore     int      `json:"matchScore"`
}

type LikeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type SkipRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type LikeResult struct {
	IsMatch bool   `json:"isMatch"`
	Message string `json:"message"`
}

type NotificationView struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// User is an account plus its public dating profile.
type User struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	ProfilePicture string    `gorm:"size:512" json:"profilePicture,omitempty"`
	Age            int       `json:"age,omitempty"`
	Gender         string    `gorm:"size:32" json:"gender,omitempty"`
	Phone          string    `gorm:"size:32;not null" json:"phone"`
	Bio            string    `gorm:"type:text;not null" json:"bio"`
	ReasonToJoin   string    `gorm:"type:text;not null" json:"reasonToJoin"`
	Community      string    `gorm:"size:255" json:"community,omitempty"`
	Interests      []string  `gorm:"serializer:json" json:"interests"`
	Instagram      string    `gorm:"size:255" json:"instagram,omitempty"`
	Facebook       string    `gorm:"size:255" json:"facebook,omitempty"`
	Youtube        string    `gorm:"size:255" json:"youtube,omitempty"`
	IsPremium      bool      `gorm:"default:false" json:"isPremium"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Like records that one user liked another. Both rows of a mutual like are
// consumed when the corresponding match is created.
type Like struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"userId"`
	LikedID   string    `gorm:"primaryKey;type:varchar(36)" json:"likedId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "user_likes"
}

// Skip records a pass on a profile so it stays out of discovery.
type Skip struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"userId"`
	SkippedID string    `gorm:"primaryKey;type:varchar(36)" json:"skippedId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Skip) TableName() string {
	return "user_skips"
}

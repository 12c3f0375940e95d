package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. CurrencyPoints is the reputation
// balance adjusted by reactions to the user's posts; it has no floor and
// may go negative. RefreshToken holds the single active session token —
// logging in on a second device overwrites it.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FirstName      string         `gorm:"not null" json:"firstName"`
	LastName       string         `gorm:"not null" json:"lastName"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	CurrencyPoints int            `gorm:"default:0" json:"currencyPoints"`
	RefreshToken   string         `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is the public projection of a User returned by the profile route.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Points    int    `json:"points"`
}

// LeaderboardEntry is one row of the top-users-by-points listing.
type LeaderboardEntry struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

func (u *User) Profile() Profile {
	return Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Points:    u.CurrencyPoints,
	}
}

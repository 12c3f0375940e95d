package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to its parent Post and is removable only by its author.
// Username is denormalized alongside UserID so comment lists render without
// a join.
type Comment struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	PostID    string         `gorm:"not null" json:"post_id"`
	UserID    uint           `gorm:"not null" json:"userId"`
	Username  string         `gorm:"not null" json:"username"`
	Text      string         `gorm:"not null" json:"comment"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

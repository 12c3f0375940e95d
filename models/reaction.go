package models

import (
	"time"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction records one user's current reaction to one post. The composite
// unique index on (post_id, username) is what keeps a username from
// appearing in both the approved and unapproved sets at once: there is
// only one row to hold, and Kind says which set it belongs to. Rows are
// hard-deleted on toggle-off so the unique index never collides with a
// tombstone.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;uniqueIndex:idx_post_username" json:"post_id"`
	Username  string    `gorm:"not null;uniqueIndex:idx_post_username" json:"username"`
	Kind      string    `gorm:"not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Post is an image post. Its ID is the UUID used as the object key in blob
// storage, so deleting a post can destroy the image by the same identifier.
// Username is the denormalized owner username used to resolve whose points
// a reaction adjusts.
type Post struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	ImgURL    string         `gorm:"not null" json:"imgUrl"`
	Username  string         `gorm:"not null" json:"username"`
	UserID    uint           `gorm:"not null" json:"userId"`
	Reactions []Reaction     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []Comment      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Approved returns the usernames currently liking the post.
func (p *Post) Approved() []string {
	return p.reactedUsernames(ReactionLike)
}

// Unapproved returns the usernames currently disliking the post.
func (p *Post) Unapproved() []string {
	return p.reactedUsernames(ReactionDislike)
}

func (p *Post) reactedUsernames(kind string) []string {
	names := []string{}
	for _, r := range p.Reactions {
		if r.Kind == kind {
			names = append(names, r.Username)
		}
	}
	return names
}

// MarshalJSON exposes the reaction rows as the pictureApproved and
// pictureUnapproved username lists clients expect.
func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		alias
		PictureApproved   []string `json:"pictureApproved"`
		PictureUnapproved []string `json:"pictureUnapproved"`
	}{
		alias:             alias(p),
		PictureApproved:   p.Approved(),
		PictureUnapproved: p.Unapproved(),
	})
}

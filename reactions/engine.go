// Package reactions implements the like/dislike toggle and the owner
// points bookkeeping that goes with it.
package reactions

import (
	"context"
	"errors"

	"picpoints/cache"
	"picpoints/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrOwnerNotFound = errors.New("post owner not found")
)

// Engine toggles reactions on posts and keeps the post owner's currency
// points consistent with the toggles.
//
// Point deltas per transition, from the post owner's perspective:
//
//	none    -> like       +100
//	like    -> none       -100
//	none    -> dislike    -100
//	dislike -> none       +100
//	dislike -> like       +200  (reversal credit + like credit)
//	like    -> dislike    -200
//
// The double-step on a direct flip is the observable contract of the
// system, not an accident of this implementation.
//
// The reaction row and the owner's points are persisted as two separate
// writes with no transaction around them. A crash between the two leaves
// points and reaction state out of sync; that gap is accepted.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Like toggles username's like on the post and returns the updated post.
func (e *Engine) Like(ctx context.Context, postID, username string) (*models.Post, error) {
	return e.toggle(ctx, postID, username, models.ReactionLike)
}

// Dislike toggles username's dislike on the post and returns the updated post.
func (e *Engine) Dislike(ctx context.Context, postID, username string) (*models.Post, error) {
	return e.toggle(ctx, postID, username, models.ReactionDislike)
}

func (e *Engine) toggle(ctx context.Context, postID, username, kind string) (*models.Post, error) {
	var post models.Post
	if err := e.db.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var owner models.User
	if err := e.db.WithContext(ctx).Where("username = ?", post.Username).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	var existing models.Reaction
	err := e.db.WithContext(ctx).
		Where("post_id = ? AND username = ?", postID, username).
		First(&existing).Error
	hasReaction := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := 100
	if kind == models.ReactionDislike {
		unit = -100
	}

	// First write: the reaction row.
	var delta int
	switch {
	case !hasReaction:
		reaction := models.Reaction{PostID: postID, Username: username, Kind: kind}
		if err := e.db.WithContext(ctx).Create(&reaction).Error; err != nil {
			return nil, err
		}
		delta = unit
	case existing.Kind == kind:
		if err := e.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return nil, err
		}
		delta = -unit
	default:
		existing.Kind = kind
		if err := e.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, err
		}
		delta = 2 * unit
	}

	// Second write: the owner's balance. Not atomic with the first.
	owner.CurrencyPoints += delta
	if err := e.db.WithContext(ctx).Save(&owner).Error; err != nil {
		return nil, err
	}

	cache.InvalidateLeaderboard(ctx)

	if err := e.db.WithContext(ctx).Preload("Reactions").Preload("Comments").First(&post, "id = ?", postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"embers/internal/models"
)

// ErrAlreadyVoted is returned when the (user, post) pair already has a vote.
var ErrAlreadyVoted = errors.New("user has already voted on this post")

// CastVote records a ±1 vote, at most one per (user, post) pair.
func CastVote(g *gorm.DB, userID, postID uint, direction int) (*models.Vote, error) {
	if direction != models.Upvote && direction != models.Downvote {
		return nil, errors.Errorf("invalid vote direction %d, want %d or %d",
			direction, models.Upvote, models.Downvote)
	}

	vote := models.Vote{
		Vote:   direction,
		UserID: &userID,
		PostID: postID,
	}
	res := g.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(&vote)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyVoted
	}
	return &vote, nil
}

package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"embers/internal/models"
)

// CreateComment appends to a post's thread tree. A parent, when given, must
// exist and belong to the same post; that keeps the tree a forest by
// construction, which the storage layer cannot express as a constraint.
func CreateComment(g *gorm.DB, postID uint, userID *uint, parentID *uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("comment text must not be empty")
	}

	if parentID != nil {
		var parent models.Comment
		if err := g.First(&parent, *parentID).Error; err != nil {
			return nil, errors.Wrap(err, "loading parent comment")
		}
		if parent.PostID != postID {
			return nil, errors.New("parent comment belongs to a different post")
		}
	}

	comment := models.Comment{
		CommentText:     text,
		UserID:          userID,
		PostID:          postID,
		CommentParentID: parentID,
	}
	if err := g.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes the comment and, via the self-referencing CASCADE,
// its entire descendant subtree.
func DeleteComment(g *gorm.DB, commentID uint) error {
	return g.Delete(&models.Comment{}, commentID).Error
}

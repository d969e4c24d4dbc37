package store

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"embers/internal/models"
)

// CreatePost writes a post carrying exactly one of url and content. Unlike the
// migration's posts pass this rejects over-long titles instead of truncating;
// a live caller can fix their input.
func CreatePost(g *gorm.DB, title string, url, content *string, userID *uint, topicID uint) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("post title must not be empty")
	}
	if utf8.RuneCountInString(title) > models.MaxPostTitleLen {
		return nil, errors.Errorf("post title longer than %d characters", models.MaxPostTitleLen)
	}
	if (url == nil) == (content == nil) {
		return nil, errors.New("exactly one of url and content must be set")
	}

	post := models.Post{
		PostTitle:   title,
		PostURL:     url,
		PostContent: content,
		UserID:      userID,
		TopicID:     topicID,
	}
	if err := g.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost cascades to the post's comments (the whole thread forest under
// it) and votes.
func DeletePost(g *gorm.DB, postID uint) error {
	return g.Delete(&models.Post{}, postID).Error
}

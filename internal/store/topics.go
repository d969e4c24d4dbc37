package store

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"embers/internal/models"
)

func CreateTopic(g *gorm.DB, name string, description *string) (*models.Topic, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("topic name must not be empty")
	}
	if utf8.RuneCountInString(name) > models.MaxTopicNameLen {
		return nil, errors.Errorf("topic name longer than %d characters", models.MaxTopicNameLen)
	}
	if description != nil && utf8.RuneCountInString(*description) > models.MaxTopicDescriptionLen {
		return nil, errors.Errorf("topic description longer than %d characters", models.MaxTopicDescriptionLen)
	}

	topic := models.Topic{TopicName: name, TopicDescription: description}
	if err := g.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// DeleteTopic removes the topic and, through the CASCADE actions, every post
// in it along with those posts' comments and votes. Unlike user deletion this
// is destructive all the way down.
func DeleteTopic(g *gorm.DB, topicID uint) error {
	return g.Delete(&models.Topic{}, topicID).Error
}

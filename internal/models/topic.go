package models

import (
	"time"
)

const (
	MaxTopicNameLen        = 30
	MaxTopicDescriptionLen = 500
)

type Topic struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TopicName        string    `gorm:"size:30;uniqueIndex;not null;check:chk_topics_topic_name,length(trim(topic_name)) > 0" json:"topic_name"`
	TopicDescription *string   `gorm:"size:500" json:"topic_description"`
	TimeCreated      time.Time `gorm:"autoCreateTime" json:"time_created"`
}

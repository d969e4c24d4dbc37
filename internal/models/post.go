package models

import (
	"time"
)

const MaxPostTitleLen = 100

// Post carries exactly one of PostURL and PostContent; the check constraint
// rejects rows with both or neither set.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostTitle   string    `gorm:"size:100;not null;check:chk_posts_post_title,length(trim(post_title)) > 0" json:"post_title"`
	PostURL     *string   `gorm:"column:post_url;check:chk_posts_url_or_content,(post_url IS NULL) <> (post_content IS NULL)" json:"post_url"`
	PostContent *string   `gorm:"type:text" json:"post_content"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	User        *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`
	TopicID     uint      `gorm:"not null;index" json:"topic_id"`
	Topic       Topic     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"topic"`
	TimeCreated time.Time `gorm:"autoCreateTime" json:"time_created"`
}

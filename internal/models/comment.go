package models

import (
	"time"
)

type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CommentText     string    `gorm:"type:text;not null;check:chk_comments_comment_text,length(trim(comment_text)) > 0" json:"comment_text"`
	UserID          *uint     `gorm:"index" json:"user_id"`
	User            *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`
	PostID          uint      `gorm:"not null;index" json:"post_id"`
	Post            Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	CommentParentID *uint     `gorm:"index" json:"comment_parent_id"` // nil for top-level comments
	Parent          *Comment  `gorm:"foreignKey:CommentParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent,omitempty"`
	TimeCreated     time.Time `gorm:"autoCreateTime" json:"time_created"`
}

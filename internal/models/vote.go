package models

import (
	"time"
)

// Vote directions. No other value passes the check constraint.
const (
	Upvote   = 1
	Downvote = -1
)

type Vote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Vote        int       `gorm:"not null;check:chk_votes_vote,vote IN (1, -1)" json:"vote"`
	UserID      *uint     `gorm:"uniqueIndex:idx_votes_user_post" json:"user_id"`
	User        *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`
	PostID      uint      `gorm:"not null;index;uniqueIndex:idx_votes_user_post" json:"post_id"`
	Post        Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	TimeCreated time.Time `gorm:"autoCreateTime" json:"time_created"`
}

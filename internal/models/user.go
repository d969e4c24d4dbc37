package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxUsernameLen is a character limit, not a byte limit.
const MaxUsernameLen = 25

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:25;uniqueIndex;not null;check:chk_users_username,length(trim(username)) > 0" json:"username"`
	TimeCreated     time.Time `gorm:"autoCreateTime" json:"time_created"`
	UsernameUpdated time.Time `gorm:"autoCreateTime" json:"username_updated"`
}

// BeforeUpdate refreshes UsernameUpdated whenever the username column is part
// of the update. Stands in for the database trigger the schema contract
// describes: the timestamp is never caller-supplied.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Username") {
		tx.Statement.SetColumn("UsernameUpdated", time.Now())
	}
	return nil
}

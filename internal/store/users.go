// Package store holds the steady-state mutation paths of the normalized
// schema. Deletion semantics (cascade vs. nullify) live on the foreign key
// actions declared by the models; the helpers here exist so every mutation
// with a side contract has exactly one code path.
package store

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"embers/internal/models"
)

// UpdateUsername changes a user's name in a single UPDATE. The User model's
// BeforeUpdate hook refreshes username_updated in the same statement, so the
// name and its timestamp can never drift apart.
func UpdateUsername(g *gorm.DB, userID uint, username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username must not be empty")
	}
	if utf8.RuneCountInString(username) > models.MaxUsernameLen {
		return errors.Errorf("username longer than %d characters", models.MaxUsernameLen)
	}

	var user models.User
	if err := g.First(&user, userID).Error; err != nil {
		return err
	}
	return g.Model(&user).Updates(map[string]any{"username": username}).Error
}

// DeleteUser removes the user row. Their posts, comments and votes survive
// with user_id set to NULL by the SET NULL actions on those tables; nothing
// authored by the user is deleted.
func DeleteUser(g *gorm.DB, userID uint) error {
	return g.Delete(&models.User{}, userID).Error
}

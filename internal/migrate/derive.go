package migrate

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gorm.io/gorm"

	"embers/internal/legacy"
	"embers/internal/models"
)

// Derivation holds the surrogate ids assigned to every username and topic name
// found in the legacy corpus. It is the only way to construct a Resolver, so
// nothing can resolve references before derivation has fully completed.
type Derivation struct {
	userIDs  map[string]uint
	topicIDs map[string]uint
}

func (d *Derivation) UserCount() int  { return len(d.userIDs) }
func (d *Derivation) TopicCount() int { return len(d.topicIDs) }

// Derive scans the legacy corpus for every username (post authors, comment
// authors, voters on either side) and every topic name, deduplicates them by
// exact string equality and persists one row per distinct name. Any name
// violating its length or non-empty constraint fails the whole migration.
func Derive(tx *gorm.DB, src legacy.Source) (*Derivation, error) {
	usernames := make(map[string]struct{})
	topics := make(map[string]struct{})

	err := src.ForEachPost(func(p legacy.BadPost) error {
		usernames[p.Username] = struct{}{}
		topics[p.Topic] = struct{}{}
		for name := range SplitVotes(p.Upvotes, p.Downvotes) {
			usernames[name] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = src.ForEachComment(func(c legacy.BadComment) error {
		usernames[c.Username] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d := &Derivation{
		userIDs:  make(map[string]uint, len(usernames)),
		topicIDs: make(map[string]uint, len(topics)),
	}

	// Insertion in sorted order keeps assigned ids deterministic for a given
	// corpus.
	for _, name := range sortedKeys(usernames) {
		if verr := validateName("username", name, models.MaxUsernameLen); verr != nil {
			return nil, verr
		}
		user := models.User{Username: name}
		if err := tx.Create(&user).Error; err != nil {
			return nil, errors.Wrapf(err, "inserting user %q", name)
		}
		d.userIDs[name] = user.ID
	}

	for _, name := range sortedKeys(topics) {
		if verr := validateName("topic name", name, models.MaxTopicNameLen); verr != nil {
			return nil, verr
		}
		topic := models.Topic{TopicName: name}
		if err := tx.Create(&topic).Error; err != nil {
			return nil, errors.Wrapf(err, "inserting topic %q", name)
		}
		d.topicIDs[name] = topic.ID
	}

	jww.INFO.Printf("derived %d users and %d topics from legacy corpus", len(d.userIDs), len(d.topicIDs))
	return d, nil
}

func validateName(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Value: value, Reason: "empty after trimming whitespace"}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return &ValidationError{Field: field, Value: value,
			Reason: fmt.Sprintf("longer than %d characters", maxLen)}
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

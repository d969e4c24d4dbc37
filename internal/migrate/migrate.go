// Package migrate turns the legacy denormalized forum tables into the
// normalized schema. It runs at most once, as a single transaction: derive
// users and topics, build the name→id resolver, then normalize posts, comments
// and votes. Any fatal condition rolls the whole run back; per-record
// rejections are collected and reported after commit.
package migrate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gorm.io/gorm"

	"embers/internal/legacy"
	"embers/internal/models"
)

// Report summarizes a committed migration.
type Report struct {
	UsersCreated    int         `json:"users_created"`
	TopicsCreated   int         `json:"topics_created"`
	PostsCreated    int         `json:"posts_created"`
	CommentsCreated int         `json:"comments_created"`
	VotesCreated    int         `json:"votes_created"`
	Rejections      []Rejection `json:"rejections,omitempty"`
}

func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "migrated %d users, %d topics, %d posts, %d comments, %d votes",
		r.UsersCreated, r.TopicsCreated, r.PostsCreated, r.CommentsCreated, r.VotesCreated)
	if len(r.Rejections) > 0 {
		fmt.Fprintf(&b, "; %d records rejected", len(r.Rejections))
	}
	return b.String()
}

// Run executes the full pipeline against src inside one transaction on g.
// On a fatal error no normalized rows remain; on success the returned Report
// carries created counts plus any per-record rejections.
func Run(g *gorm.DB, src legacy.Source) (*Report, error) {
	if err := ensureEmptyTarget(g); err != nil {
		return nil, err
	}

	report := &Report{}
	err := g.Transaction(func(tx *gorm.DB) error {
		derivation, err := Derive(tx, src)
		if err != nil {
			return err
		}
		report.UsersCreated = derivation.UserCount()
		report.TopicsCreated = derivation.TopicCount()

		w := &writer{tx: tx, res: NewResolver(derivation), report: report}

		postIDs, err := w.writePosts(src)
		if err != nil {
			return err
		}
		if err := w.writeComments(src, postIDs); err != nil {
			return err
		}
		return w.writeVotes(src, postIDs)
	})
	if err != nil {
		jww.ERROR.Printf("migration aborted, rolled back: %v", err)
		return nil, err
	}

	jww.INFO.Println(report.Summary())
	return report, nil
}

func ensureEmptyTarget(g *gorm.DB) error {
	for _, model := range models.AllModels() {
		var count int64
		if err := g.Model(model).Count(&count).Error; err != nil {
			return errors.Wrap(err, "checking target schema")
		}
		if count > 0 {
			return ErrAlreadyMigrated
		}
	}
	return nil
}

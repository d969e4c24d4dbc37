package migrate

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"embers/internal/legacy"
	"embers/internal/models"
)

// writer runs the three normalization passes. Each pass resolves every foreign
// key before writing; posts must run first because comments and votes join
// through the legacy-id→new-id map it produces (the database assigns fresh
// surrogate ids on insert, so legacy post ids do not survive the copy).
type writer struct {
	tx     *gorm.DB
	res    *Resolver
	report *Report
}

func (w *writer) writePosts(src legacy.Source) (map[uint]uint, error) {
	postIDs := make(map[uint]uint)

	err := src.ForEachPost(func(p legacy.BadPost) error {
		hasURL := strings.TrimSpace(p.URL) != ""
		hasContent := strings.TrimSpace(p.TextContent) != ""
		if hasURL == hasContent {
			return &AmbiguousContentError{LegacyPostID: p.ID, BothSet: hasURL}
		}

		// Titles are free text, so over-long ones are truncated; identifiers
		// in derive.go reject instead.
		title := truncateRunes(p.Title, models.MaxPostTitleLen)
		if strings.TrimSpace(title) == "" {
			return &ValidationError{Field: "post title", Value: p.Title, Reason: "empty after trimming whitespace"}
		}

		userID, err := w.res.UserID(p.Username)
		if err != nil {
			return err
		}
		topicID, err := w.res.TopicID(p.Topic)
		if err != nil {
			return err
		}

		post := models.Post{
			PostTitle: title,
			UserID:    &userID,
			TopicID:   topicID,
		}
		if hasURL {
			url := p.URL
			post.PostURL = &url
		} else {
			content := p.TextContent
			post.PostContent = &content
		}

		if err := w.tx.Create(&post).Error; err != nil {
			return errors.Wrapf(err, "inserting post for legacy id %d", p.ID)
		}
		postIDs[p.ID] = post.ID
		w.report.PostsCreated++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return postIDs, nil
}

func (w *writer) writeComments(src legacy.Source, postIDs map[uint]uint) error {
	return src.ForEachComment(func(c legacy.BadComment) error {
		if strings.TrimSpace(c.TextContent) == "" {
			return &ValidationError{Field: "comment text", Value: c.TextContent, Reason: "empty after trimming whitespace"}
		}

		userID, err := w.res.UserID(c.Username)
		if err != nil {
			return err
		}
		postID, ok := postIDs[c.PostID]
		if !ok {
			return &ResolutionError{Kind: "post", Ref: strconv.FormatUint(uint64(c.PostID), 10)}
		}

		comment := models.Comment{
			CommentText: c.TextContent, // verbatim
			UserID:      &userID,
			PostID:      postID,
		}
		if err := w.tx.Create(&comment).Error; err != nil {
			return errors.Wrapf(err, "inserting comment for legacy id %d", c.ID)
		}
		w.report.CommentsCreated++
		return nil
	})
}

func (w *writer) writeVotes(src legacy.Source, postIDs map[uint]uint) error {
	return src.ForEachPost(func(p legacy.BadPost) error {
		postID, ok := postIDs[p.ID]
		if !ok {
			return &ResolutionError{Kind: "post", Ref: strconv.FormatUint(uint64(p.ID), 10)}
		}

		for name, direction := range SplitVotes(p.Upvotes, p.Downvotes) {
			userID, err := w.res.UserID(name)
			if err != nil {
				return err
			}

			vote := models.Vote{
				Vote:   direction,
				UserID: &userID,
				PostID: postID,
			}
			// A voter listed in both the up and down list of one post is a
			// known legacy data-quality issue; the second insert hits the
			// (user_id, post_id) unique index and is recorded, not fatal.
			res := w.tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
				DoNothing: true,
			}).Create(&vote)
			if res.Error != nil {
				return errors.Wrapf(res.Error, "inserting vote by %q on legacy post %d", name, p.ID)
			}
			if res.RowsAffected == 0 {
				rej := Rejection{
					Kind:         RejectionDuplicateVote,
					Username:     name,
					LegacyPostID: p.ID,
					Reason:       "user already voted on this post",
				}
				w.report.Rejections = append(w.report.Rejections, rej)
				jww.WARN.Printf("rejected %s", rej)
				continue
			}
			w.report.VotesCreated++
		}
		return nil
	})
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package legacy

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultBatchSize = 500

// DBSource streams the legacy tables out of a live database in primary-key
// order, batched so a large corpus never sits in memory at once.
type DBSource struct {
	db    *gorm.DB
	batch int
}

func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db, batch: defaultBatchSize}
}

func (s *DBSource) ForEachPost(fn func(BadPost) error) error {
	var rows []BadPost
	res := s.db.FindInBatches(&rows, s.batch, func(_ *gorm.DB, _ int) error {
		for _, row := range rows {
			if err := fn(row); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(res.Error, "reading bad_posts")
}

func (s *DBSource) ForEachComment(fn func(BadComment) error) error {
	var rows []BadComment
	res := s.db.FindInBatches(&rows, s.batch, func(_ *gorm.DB, _ int) error {
		for _, row := range rows {
			if err := fn(row); err != nil {
				return err
			}
		}
		return nil
	})
	return errors.Wrap(res.Error, "reading bad_comments")
}

// SliceSource serves a fixed corpus from memory. Used by tests and small
// one-off imports.
type SliceSource struct {
	Posts    []BadPost
	Comments []BadComment
}

func (s *SliceSource) ForEachPost(fn func(BadPost) error) error {
	for _, p := range s.Posts {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *SliceSource) ForEachComment(fn func(BadComment) error) error {
	for _, c := range s.Comments {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

// Package legacy models the denormalized source schema the migration reads
// from: flat posts with embedded topic/username strings and comma-joined voter
// lists, flat comments with embedded usernames.
package legacy

// BadPost is one row of the legacy posts table. Upvotes and Downvotes are
// comma-joined username lists.
type BadPost struct {
	ID          uint   `gorm:"primaryKey"`
	Topic       string `gorm:"size:50"`
	Username    string `gorm:"size:50"`
	Title       string `gorm:"size:150"`
	URL         string `gorm:"column:url;size:4000"`
	TextContent string `gorm:"column:text_content;type:text"`
	Upvotes     string `gorm:"type:text"`
	Downvotes   string `gorm:"type:text"`
}

func (BadPost) TableName() string { return "bad_posts" }

// BadComment is one row of the legacy comments table. PostID references the
// legacy post row, not a normalized one.
type BadComment struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:50"`
	PostID      uint   `gorm:"column:post_id"`
	TextContent string `gorm:"column:text_content;type:text"`
}

func (BadComment) TableName() string { return "bad_comments" }

// Source exposes the two legacy record streams. Both streams must be
// restartable: the pipeline walks the posts three times (derivation, posts
// pass, votes pass). Returning an error from fn stops the walk and propagates.
type Source interface {
	ForEachPost(fn func(BadPost) error) error
	ForEachComment(fn func(BadComment) error) error
}

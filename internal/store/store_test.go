package store_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"embers/internal/models"
	"embers/internal/store"
	"embers/internal/testutil"
)

// fixture builds user → topic → post → comment thread (c1 → c2 → c3) → vote.
type fixture struct {
	user    models.User
	topic   models.Topic
	post    *models.Post
	c1      *models.Comment
	c2      *models.Comment
	c3      *models.Comment
	sibling *models.Comment
	vote    *models.Vote
}

func buildFixture(t *testing.T, g *gorm.DB) fixture {
	t.Helper()

	f := fixture{user: models.User{Username: "alice"}}
	require.NoError(t, g.Create(&f.user).Error)

	topic, err := store.CreateTopic(g, "science", nil)
	require.NoError(t, err)
	f.topic = *topic

	url := "https://example.com"
	f.post, err = store.CreatePost(g, "Black holes", &url, nil, &f.user.ID, f.topic.ID)
	require.NoError(t, err)

	f.c1, err = store.CreateComment(g, f.post.ID, &f.user.ID, nil, "root")
	require.NoError(t, err)
	f.c2, err = store.CreateComment(g, f.post.ID, &f.user.ID, &f.c1.ID, "reply")
	require.NoError(t, err)
	f.c3, err = store.CreateComment(g, f.post.ID, &f.user.ID, &f.c2.ID, "reply to reply")
	require.NoError(t, err)
	f.sibling, err = store.CreateComment(g, f.post.ID, &f.user.ID, nil, "another root")
	require.NoError(t, err)

	f.vote, err = store.CastVote(g, f.user.ID, f.post.ID, models.Upvote)
	require.NoError(t, err)

	return f
}

func count(t *testing.T, g *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, g.Model(model).Count(&n).Error)
	return n
}

func TestUpdateUsername(t *testing.T) {
	g := testutil.OpenDB(t)
	u := models.User{Username: "alice"}
	require.NoError(t, g.Create(&u).Error)
	before := u.UsernameUpdated

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.UpdateUsername(g, u.ID, "alicia"))

	var reloaded models.User
	require.NoError(t, g.First(&reloaded, u.ID).Error)
	assert.Equal(t, "alicia", reloaded.Username)
	assert.True(t, reloaded.UsernameUpdated.After(before))

	assert.Error(t, store.UpdateUsername(g, u.ID, "   "))
	assert.Error(t, store.UpdateUsername(g, u.ID, strings.Repeat("x", models.MaxUsernameLen+1)))
	assert.ErrorIs(t, store.UpdateUsername(g, 9999, "bob"), gorm.ErrRecordNotFound)
}

func TestDeleteUserNullifiesReferences(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	require.NoError(t, store.DeleteUser(g, f.user.ID))

	// Content survives, authorship is dissociated.
	assert.EqualValues(t, 1, count(t, g, &models.Post{}))
	assert.EqualValues(t, 4, count(t, g, &models.Comment{}))
	assert.EqualValues(t, 1, count(t, g, &models.Vote{}))

	var post models.Post
	require.NoError(t, g.First(&post, f.post.ID).Error)
	assert.Nil(t, post.UserID)

	var comment models.Comment
	require.NoError(t, g.First(&comment, f.c1.ID).Error)
	assert.Nil(t, comment.UserID)

	var vote models.Vote
	require.NoError(t, g.First(&vote, f.vote.ID).Error)
	assert.Nil(t, vote.UserID)
}

func TestDeleteTopicCascadesEverything(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	require.NoError(t, store.DeleteTopic(g, f.topic.ID))

	assert.Zero(t, count(t, g, &models.Topic{}))
	assert.Zero(t, count(t, g, &models.Post{}))
	assert.Zero(t, count(t, g, &models.Comment{}), "comments must cascade through every descendant level")
	assert.Zero(t, count(t, g, &models.Vote{}))

	// Users are never deleted by cascades.
	assert.EqualValues(t, 1, count(t, g, &models.User{}))
}

func TestDeletePostCascadesCommentsAndVotes(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	require.NoError(t, store.DeletePost(g, f.post.ID))

	assert.Zero(t, count(t, g, &models.Comment{}))
	assert.Zero(t, count(t, g, &models.Vote{}))
	assert.EqualValues(t, 1, count(t, g, &models.Topic{}))
	assert.EqualValues(t, 1, count(t, g, &models.User{}))
}

func TestDeleteCommentCascadesSubtreeOnly(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	require.NoError(t, store.DeleteComment(g, f.c1.ID))

	var remaining []models.Comment
	require.NoError(t, g.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, f.sibling.ID, remaining[0].ID)
}

func TestCastVoteRules(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	_, err := store.CastVote(g, f.user.ID, f.post.ID, 0)
	assert.Error(t, err, "direction outside {1,-1} must be rejected")

	_, err = store.CastVote(g, f.user.ID, f.post.ID, models.Downvote)
	assert.ErrorIs(t, err, store.ErrAlreadyVoted)

	bob := models.User{Username: "bob"}
	require.NoError(t, g.Create(&bob).Error)
	v, err := store.CastVote(g, bob.ID, f.post.ID, models.Downvote)
	require.NoError(t, err)
	assert.Equal(t, models.Downvote, v.Vote)
}

func TestCreateCommentRejectsCrossPostParent(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	content := "more text"
	other, err := store.CreatePost(g, "Other post", nil, &content, &f.user.ID, f.topic.ID)
	require.NoError(t, err)

	_, err = store.CreateComment(g, other.ID, &f.user.ID, &f.c1.ID, "wrong thread")
	assert.Error(t, err)

	_, err = store.CreateComment(g, f.post.ID, &f.user.ID, nil, "  ")
	assert.Error(t, err)
}

func TestCreatePostExclusivity(t *testing.T) {
	g := testutil.OpenDB(t)
	f := buildFixture(t, g)

	url := "https://example.com/x"
	content := "text"

	_, err := store.CreatePost(g, "t", &url, &content, &f.user.ID, f.topic.ID)
	assert.Error(t, err)

	_, err = store.CreatePost(g, "t", nil, nil, &f.user.ID, f.topic.ID)
	assert.Error(t, err)

	_, err = store.CreatePost(g, strings.Repeat("x", models.MaxPostTitleLen+1), &url, nil, &f.user.ID, f.topic.ID)
	assert.Error(t, err)
}

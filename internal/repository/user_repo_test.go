package repository

import (
	"Blogicum/internal/model"
	"Blogicum/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCascades(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	users := NewUserRepo(db)
	comments := NewCommentRepository(db)

	gone := f.User("gone")
	stays := f.User("stays")
	own := f.Post(gone, "own", testutil.WithImage("post_images/a.jpg"))
	f.Post(gone, "plain")
	other := f.Post(stays, "other")
	f.Comment(stays, own, "on gone's post")
	f.Comment(gone, other, "by gone")
	f.Comment(stays, other, "by stays")

	images, err := users.DeleteUser(testutil.Ctx(), gone.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post_images/a.jpg"}, images)

	u, err := users.GetUserById(testutil.Ctx(), gone.ID)
	require.NoError(t, err)
	assert.Nil(t, u)

	var postCount int64
	require.NoError(t, db.Model(&model.Post{}).Where("author_id = ?", gone.ID).Count(&postCount).Error)
	assert.Zero(t, postCount)

	assert.Zero(t, f.CommentCount(own.ID))

	left, err := comments.GetCommentsByPostID(testutil.Ctx(), other.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "by stays", left[0].Text)
}

func TestUsernameUnique(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	users := NewUserRepo(db)

	f.User("taken")
	err := users.CreateUser(testutil.Ctx(), &model.User{Username: "taken", Password: "x"})
	require.Error(t, err)
	assert.True(t, IsDuplicateError(err))

	got, err := users.GetUserByUsername(testutil.Ctx(), "taken")
	require.NoError(t, err)
	require.NotNil(t, got)
}

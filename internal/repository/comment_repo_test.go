package repository

import (
	"Blogicum/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsOrderedByCreation(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewCommentRepository(db)

	u := f.User("u")
	p := f.Post(u, "p")
	first := f.Comment(u, p, "first")
	f.Comment(u, p, "second")
	f.Comment(u, p, "third")

	list, err := repo.GetCommentsByPostID(testutil.Ctx(), p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "third", list[2].Text)
	assert.Equal(t, "u", list[0].Author.Username)

	require.NoError(t, repo.UpdateCommentText(testutil.Ctx(), first.ID, "edited"))
	got, err := repo.GetComment(testutil.Ctx(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)

	require.NoError(t, repo.DeleteComment(testutil.Ctx(), first.ID))
	got, err = repo.GetComment(testutil.Ctx(), first.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

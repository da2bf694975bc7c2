package repository

import (
	"Blogicum/internal/model"
	"Blogicum/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(posts []*model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestListPostsPublicPredicate(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u1 := f.User("u1")
	open := f.Category("open", true)
	hidden := f.Category("hidden", false)

	f.Post(u1, "visible")
	f.Post(u1, "in open category", testutil.InCategory(open))
	f.Post(u1, "draft", testutil.Unpublished())
	f.Post(u1, "scheduled", testutil.PubAt(f.Now.Add(24*time.Hour)))
	f.Post(u1, "in hidden category", testutil.InCategory(hidden))

	posts, total, err := repo.ListPosts(testutil.Ctx(), PostQuery{Public: true, Now: f.Now, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.ElementsMatch(t, []string{"visible", "in open category"}, titles(posts))

	all, total, err := repo.ListPosts(testutil.Ctx(), PostQuery{AuthorID: u1.ID, Now: f.Now, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, all, 5)
}

func TestListPostsOrderingAndTies(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("author")
	same := f.Now.Add(-2 * time.Hour).Truncate(time.Second)
	f.Post(u, "oldest", testutil.PubAt(f.Now.Add(-72*time.Hour)))
	f.Post(u, "tie first", testutil.PubAt(same))
	f.Post(u, "newest", testutil.PubAt(f.Now.Add(-time.Minute)))
	f.Post(u, "tie second", testutil.PubAt(same))

	posts, _, err := repo.ListPosts(testutil.Ctx(), PostQuery{Public: true, Now: f.Now, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "tie first", "tie second", "oldest"}, titles(posts))

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].PubDate.After(posts[i-1].PubDate))
	}
}

func TestListPostsCommentCount(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u1 := f.User("u1")
	u2 := f.User("u2")
	p1 := f.Post(u1, "popular")
	p2 := f.Post(u1, "quiet", testutil.PubAt(f.Now.Add(-2*time.Hour)))
	f.Comment(u2, p1, "first")
	f.Comment(u1, p1, "second")
	f.Comment(u2, p1, "third")

	posts, _, err := repo.ListPosts(testutil.Ctx(), PostQuery{Public: true, Now: f.Now, Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p1.ID, posts[0].ID)
	assert.Equal(t, int64(3), posts[0].CommentCount)
	assert.Equal(t, p2.ID, posts[1].ID)
	assert.Equal(t, int64(0), posts[1].CommentCount)

	// 实时计算，新增评论立即反映
	f.Comment(u2, p2, "late")
	got, err := repo.GetPost(testutil.Ctx(), p2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CommentCount)
}

func TestListPostsPagination(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("writer")
	for i := 0; i < 13; i++ {
		f.Post(u, "post", testutil.PubAt(f.Now.Add(-time.Duration(i+1)*time.Hour)))
	}

	first, total, err := repo.ListPosts(testutil.Ctx(), PostQuery{Public: true, Now: f.Now, Offset: 0, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Len(t, first, 10)

	second, _, err := repo.ListPosts(testutil.Ctx(), PostQuery{Public: true, Now: f.Now, Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.True(t, second[0].PubDate.Before(first[9].PubDate))
}

func TestListPostsByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("u")
	travel := f.Category("travel", true)
	food := f.Category("food", true)
	f.Post(u, "trip", testutil.InCategory(travel))
	f.Post(u, "trip draft", testutil.InCategory(travel), testutil.Unpublished())
	f.Post(u, "soup", testutil.InCategory(food))

	posts, total, err := repo.ListPosts(testutil.Ctx(), PostQuery{CategoryID: travel.ID, Public: true, Now: f.Now, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"trip"}, titles(posts))
	require.NotNil(t, posts[0].Category)
	assert.Equal(t, "travel", posts[0].Category.Slug)
}

func TestGetPostPreloadsRelations(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("u")
	c := f.Category("c", true)
	l := f.Location("Moscow", true)
	p := f.Post(u, "full", testutil.InCategory(c), testutil.AtLocation(l))

	got, err := repo.GetPost(testutil.Ctx(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u", got.Author.Username)
	require.NotNil(t, got.Category)
	assert.Equal(t, c.ID, got.Category.ID)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Moscow", got.Location.Name)

	missing, err := repo.GetPost(testutil.Ctx(), 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdatePostWritesZeroValues(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("u")
	c := f.Category("c", true)
	p := f.Post(u, "before", testutil.InCategory(c))

	p.Title = "after"
	p.IsPublished = false
	p.CategoryID = nil
	require.NoError(t, repo.UpdatePost(testutil.Ctx(), p))

	got, err := repo.GetPost(testutil.Ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.False(t, got.IsPublished)
	assert.Nil(t, got.CategoryID)
}

func TestDeletePostRemovesComments(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.NewFixtures(t, db)
	repo := NewPostRepository(db)

	u := f.User("u")
	p := f.Post(u, "doomed")
	keep := f.Post(u, "kept")
	f.Comment(u, p, "a")
	f.Comment(u, p, "b")
	f.Comment(u, keep, "c")

	require.NoError(t, repo.DeletePost(testutil.Ctx(), p.ID))

	got, err := repo.GetPost(testutil.Ctx(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Zero(t, f.CommentCount(p.ID))
	assert.Equal(t, int64(1), f.CommentCount(keep.ID))
}

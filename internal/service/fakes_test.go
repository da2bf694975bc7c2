package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/repository"
	"Blogicum/internal/testutil"
	"testing"

	"gorm.io/gorm"
)

// env 一组基于同一测试库的服务
type env struct {
	db       *gorm.DB
	f        *testutil.Fixtures
	store    *testutil.MemMediaStore
	media    MediaService
	posts    PostService
	comments CommentService
}

func newEnv(t *testing.T) *env {
	db := testutil.NewDB(t)
	store := testutil.NewMemMediaStore()
	media := NewMediaService(store, 1920, 10)
	posts := NewPostService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewUserRepo(db),
		repository.NewCategoryRepository(db),
		repository.NewLocationRepository(db),
		media,
	)
	comments := NewCommentService(repository.NewPostRepository(db), repository.NewCommentRepository(db))
	return &env{
		db:       db,
		f:        testutil.NewFixtures(t, db),
		store:    store,
		media:    media,
		posts:    posts,
		comments: comments,
	}
}

func postTitles(list []*dto.PostDTO) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Title)
	}
	return out
}

// Package testutil 测试用的数据库与数据构造
package testutil

import (
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/database"
	"Blogicum/internal/pkg/security"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试一个独立的内存库
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixtures 快速构造测试数据
type Fixtures struct {
	T   *testing.T
	DB  *gorm.DB
	Now time.Time
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{T: t, DB: db, Now: time.Now()}
}

func (f *Fixtures) User(username string) *model.User {
	f.T.Helper()
	hash, err := security.HashPassword("password-" + username)
	require.NoError(f.T, err)
	u := &model.User{Username: username, Password: hash}
	require.NoError(f.T, f.DB.Create(u).Error)
	return u
}

func (f *Fixtures) Admin(username string) *model.User {
	f.T.Helper()
	u := f.User(username)
	require.NoError(f.T, f.DB.Model(u).Update("is_admin", true).Error)
	u.IsAdmin = true
	return u
}

func (f *Fixtures) Category(slug string, published bool) *model.Category {
	f.T.Helper()
	c := &model.Category{Title: "Category " + slug, Description: "about " + slug, Slug: slug, IsPublished: published}
	require.NoError(f.T, f.DB.Create(c).Error)
	return c
}

func (f *Fixtures) Location(name string, published bool) *model.Location {
	f.T.Helper()
	l := &model.Location{Name: name, IsPublished: published}
	require.NoError(f.T, f.DB.Create(l).Error)
	return l
}

// PostOpt 调整帖子字段
type PostOpt func(p *model.Post)

func Unpublished() PostOpt { return func(p *model.Post) { p.IsPublished = false } }

func PubAt(at time.Time) PostOpt { return func(p *model.Post) { p.PubDate = at } }

func InCategory(c *model.Category) PostOpt {
	return func(p *model.Post) { p.CategoryID = &c.ID }
}

func AtLocation(l *model.Location) PostOpt {
	return func(p *model.Post) { p.LocationID = &l.ID }
}

func WithImage(key string) PostOpt { return func(p *model.Post) { p.Image = key } }

// Post 默认：已发布，发布时间为一小时前
func (f *Fixtures) Post(author *model.User, title string, opts ...PostOpt) *model.Post {
	f.T.Helper()
	p := &model.Post{
		Title:       title,
		Text:        "text of " + title,
		PubDate:     f.Now.Add(-time.Hour),
		IsPublished: true,
		AuthorID:    author.ID,
	}
	for _, opt := range opts {
		opt(p)
	}
	require.NoError(f.T, f.DB.Omit("Author", "Location", "Category").Create(p).Error)
	return p
}

func (f *Fixtures) Comment(author *model.User, post *model.Post, text string) *model.Comment {
	f.T.Helper()
	c := &model.Comment{Text: text, PostID: post.ID, AuthorID: author.ID}
	require.NoError(f.T, f.DB.Omit("Post", "Author").Create(c).Error)
	return c
}

// CommentCount 直接统计帖子评论数
func (f *Fixtures) CommentCount(postID uint64) int64 {
	f.T.Helper()
	var n int64
	require.NoError(f.T, f.DB.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&n).Error)
	return n
}

// Ctx 测试默认上下文
func Ctx() context.Context {
	return context.Background()
}

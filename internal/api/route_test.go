package api_test

import (
	"Blogicum/internal/api/config"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/testutil"
	"Blogicum/internal/wire"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	Status   int
	Location string
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Data     map[string]any  `json:"-"`
	RawData  json.RawMessage `json:"data"`
}

type server struct {
	t         *testing.T
	router    http.Handler
	f         *testutil.Fixtures
	store     *testutil.MemMediaStore
	blacklist *testutil.MemBlacklist
}

func newServer(t *testing.T) *server {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	store := testutil.NewMemMediaStore()
	blacklist := testutil.NewMemBlacklist()
	cfg := &config.Config{Blog: config.BlogConfig{MaxImageSide: 1920, MaxImageMB: 10}}

	app, err := wire.BuildApplication(db, cfg, wire.Infra{MediaStore: store, Blacklist: blacklist})
	require.NoError(t, err)
	return &server{
		t:         t,
		router:    app.Router,
		f:         testutil.NewFixtures(t, db),
		store:     store,
		blacklist: blacklist,
	}
}

func (s *server) token(u *model.User) string {
	s.t.Helper()
	roles := []string{consts.RoleUser}
	if u.IsAdmin {
		roles = append(roles, consts.RoleAdmin)
	}
	token, err := security.GenerateToken(u.ID, roles)
	require.NoError(s.t, err)
	return token
}

func (s *server) do(method, path, token string, body any) *result {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	res := &result{Status: w.Code, Location: w.Header().Get("Location")}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), res), w.Body.String())
	if len(res.RawData) > 0 && res.RawData[0] == '{' {
		require.NoError(s.t, json.Unmarshal(res.RawData, &res.Data))
	}
	return res
}

func postPath(p *model.Post) string {
	return fmt.Sprintf("/api/posts/%d", p.ID)
}

func TestPing(t *testing.T) {
	s := newServer(t)
	res := s.do(http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "pong", res.Message)
}

func TestIndexAndDetailVisibility(t *testing.T) {
	s := newServer(t)
	author := s.f.User("author")
	public := s.f.Post(author, "public")
	draft := s.f.Post(author, "draft", testutil.Unpublished())

	res := s.do(http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, 200, res.Code)
	list := res.Data["list"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "public", list[0].(map[string]any)["title"])

	res = s.do(http.MethodGet, postPath(draft), "", nil)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, 404, res.Code)

	res = s.do(http.MethodGet, postPath(draft), s.token(author), nil)
	assert.Equal(t, 200, res.Code)

	res = s.do(http.MethodGet, postPath(public), "", nil)
	assert.Equal(t, 200, res.Code)
	assert.EqualValues(t, 0, res.Data["comment_count"])

	res = s.do(http.MethodGet, "/api/posts/abc", "", nil)
	assert.Equal(t, 404, res.Code)

	for _, page := range []string{"abc", "0", "2"} {
		res = s.do(http.MethodGet, "/api/posts?page="+page, "", nil)
		assert.Equal(t, 404, res.Code, "page %s", page)
	}
}

func TestCategoryAndProfileRoutes(t *testing.T) {
	s := newServer(t)
	author := s.f.User("author")
	open := s.f.Category("open", true)
	s.f.Category("closed", false)
	s.f.Post(author, "in open", testutil.InCategory(open))
	s.f.Post(author, "draft", testutil.Unpublished())

	res := s.do(http.MethodGet, "/api/category/open", "", nil)
	assert.Equal(t, 200, res.Code)
	assert.Len(t, res.Data["list"], 1)

	res = s.do(http.MethodGet, "/api/category/closed", s.token(author), nil)
	assert.Equal(t, 404, res.Code)

	res = s.do(http.MethodGet, "/api/category/open/info", "", nil)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "open", res.Data["slug"])

	res = s.do(http.MethodGet, "/api/profile/author/posts", "", nil)
	assert.Equal(t, 200, res.Code)
	assert.Len(t, res.Data["list"], 1)

	res = s.do(http.MethodGet, "/api/profile/author/posts", s.token(author), nil)
	assert.Equal(t, 200, res.Code)
	assert.Len(t, res.Data["list"], 2)

	res = s.do(http.MethodGet, "/api/profile/ghost/posts", "", nil)
	assert.Equal(t, 404, res.Code)

	for _, path := range []string{"/api/category/open", "/api/profile/author/posts"} {
		res = s.do(http.MethodGet, path+"?page=1", "", nil)
		assert.Equal(t, 200, res.Code, path)
		for _, page := range []string{"abc", "0", "2"} {
			res = s.do(http.MethodGet, path+"?page="+page, "", nil)
			assert.Equal(t, 404, res.Code, "%s page %s", path, page)
		}
	}
}

func TestForeignPostMutationRedirects(t *testing.T) {
	s := newServer(t)
	author := s.f.User("author")
	other := s.f.User("other")
	public := s.f.Post(author, "public")
	draft := s.f.Post(author, "draft", testutil.Unpublished())

	body := map[string]any{"title": "hijack", "text": "x", "pub_date": time.Now().Format(time.RFC3339)}

	res := s.do(http.MethodPut, postPath(public), s.token(other), body)
	assert.Equal(t, http.StatusSeeOther, res.Status)
	assert.Equal(t, postPath(public), res.Location)
	assert.Equal(t, 403, res.Code)

	res = s.do(http.MethodDelete, postPath(public), s.token(other), nil)
	assert.Equal(t, http.StatusSeeOther, res.Status)

	res = s.do(http.MethodPut, postPath(draft), s.token(other), body)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, 404, res.Code)

	res = s.do(http.MethodDelete, postPath(public), s.token(author), nil)
	assert.Equal(t, 200, res.Code)
}

func TestForeignCommentMutationRedirects(t *testing.T) {
	s := newServer(t)
	author := s.f.User("author")
	other := s.f.User("other")
	post := s.f.Post(author, "post")
	comment := s.f.Comment(author, post, "mine")
	path := fmt.Sprintf("%s/comments/%d", postPath(post), comment.ID)

	res := s.do(http.MethodPut, path, s.token(other), map[string]any{"text": "edited"})
	assert.Equal(t, http.StatusSeeOther, res.Status)
	assert.Equal(t, postPath(post), res.Location)

	res = s.do(http.MethodPost, postPath(post)+"/comments", s.token(other), map[string]any{"text": "hello"})
	assert.Equal(t, 200, res.Code)

	res = s.do(http.MethodPost, postPath(post)+"/comments", s.token(other), map[string]any{"text": ""})
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Data, "text")

	res = s.do(http.MethodGet, postPath(post)+"/comments", "", nil)
	assert.Equal(t, 200, res.Code)
}

func TestCreatePostValidationAndAuth(t *testing.T) {
	s := newServer(t)
	author := s.f.User("author")

	res := s.do(http.MethodPost, "/api/posts", "", map[string]any{"title": "t"})
	assert.Equal(t, 401, res.Code)

	res = s.do(http.MethodPost, "/api/posts", s.token(author), map[string]any{"text": "no title"})
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Data, "title")

	res = s.do(http.MethodPost, "/api/posts", s.token(author), map[string]any{
		"title":       "ok",
		"text":        "body",
		"pub_date":    time.Now().Add(-time.Minute).Format(time.RFC3339),
		"category_id": 777,
	})
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Data, "category_id")

	res = s.do(http.MethodPost, "/api/posts", s.token(author), map[string]any{
		"title":    "ok",
		"text":     "body",
		"pub_date": time.Now().Add(-time.Minute).Format(time.RFC3339),
	})
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, true, res.Data["is_published"])
}

func TestLoginLogoutFlow(t *testing.T) {
	s := newServer(t)

	res := s.do(http.MethodPost, "/api/user/register", "", map[string]any{"username": "no spaces", "password": "secret123"})
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Data, "username")

	res = s.do(http.MethodPost, "/api/user/register", "", map[string]any{"username": "alice", "password": "secret123"})
	require.Equal(t, 200, res.Code)

	res = s.do(http.MethodPost, "/api/user/login", "", map[string]any{"username": "alice", "password": "secret123"})
	require.Equal(t, 200, res.Code)
	token := res.Data["token"].(string)

	res = s.do(http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "alice", res.Data["username"])

	res = s.do(http.MethodPost, "/api/user/logout", token, nil)
	assert.Equal(t, 200, res.Code)

	res = s.do(http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, 401, res.Code)
}

func TestAdminRoutesRequireRole(t *testing.T) {
	s := newServer(t)
	user := s.f.User("user")
	admin := s.f.Admin("root")

	body := map[string]any{"title": "News", "description": "d", "slug": "news"}
	res := s.do(http.MethodPost, "/api/admin/categories", s.token(user), body)
	assert.Equal(t, 403, res.Code)

	res = s.do(http.MethodPost, "/api/admin/categories", s.token(admin), body)
	assert.Equal(t, 200, res.Code)

	res = s.do(http.MethodPost, "/api/admin/categories", s.token(admin), body)
	assert.Equal(t, 400, res.Code)

	res = s.do(http.MethodPost, "/api/admin/categories", s.token(admin), map[string]any{"title": "Bad", "description": "d", "slug": "bad slug"})
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Data, "slug")

	res = s.do(http.MethodPost, "/api/admin/locations", s.token(admin), map[string]any{"name": "Paris"})
	assert.Equal(t, 200, res.Code)

	res = s.do(http.MethodDelete, fmt.Sprintf("/api/user/%d", user.ID), s.token(user), nil)
	assert.Equal(t, 403, res.Code)
	res = s.do(http.MethodDelete, fmt.Sprintf("/api/user/%d", user.ID), s.token(admin), nil)
	assert.Equal(t, 200, res.Code)
}

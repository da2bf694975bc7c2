package middleware

import (
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBody(t *testing.T) {
	masked := maskBody([]byte(`{"username":"alice","password":"secret123"}`))
	assert.Contains(t, masked, `"password":"***"`)
	assert.NotContains(t, masked, "secret123")

	assert.Equal(t, `{"title":"x"}`, maskBody([]byte(`{"title":"x"}`)))
	assert.Equal(t, "not json", maskBody([]byte("not json")))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://allowed.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://allowed.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTraceMiddlewareKeepsValidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(traceHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(traceHeader))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(traceHeader, "garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Header().Get(traceHeader))
	assert.NoError(t, err)
}

func TestAuthOptionalIgnoresRevokedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	blacklist := testutil.NewMemBlacklist()
	r := gin.New()
	r.Use(AuthOptionalMiddleware(blacklist))
	var seen uint64
	r.GET("/x", func(c *gin.Context) {
		seen = c.GetUint64(consts.UserIDKey)
		c.Status(http.StatusOK)
	})

	token, err := security.GenerateToken(42, []string{consts.RoleUser})
	require.NoError(t, err)

	call := func() {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	call()
	assert.Equal(t, uint64(42), seen)

	signature, err := security.ExtractSignature(token)
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(testutil.Ctx(), signature, 0))
	call()
	assert.Zero(t, seen)
}

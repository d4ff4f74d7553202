package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		*seen = Value(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestMiddlewareGeneratesID(t *testing.T) {
	var seen string
	rec := httptest.NewRecorder()
	newRouter(&seen).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestMiddlewareReusesClientID(t *testing.T) {
	var seen string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newRouter(&seen).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
}

func TestMiddlewareRejectsOversizedID(t *testing.T) {
	var seen string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 500))
	rec := httptest.NewRecorder()
	newRouter(&seen).ServeHTTP(rec, req)

	assert.NotEqual(t, strings.Repeat("x", 500), seen)
	assert.Len(t, seen, 36)
}

func TestMiddlewareRejectsUnprintableID(t *testing.T) {
	for _, raw := range []string{"a b", "line\tbreak", "sesi-ü"} {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", raw)
		newRouter(&seen).ServeHTTP(httptest.NewRecorder(), req)
		assert.NotEqual(t, raw, seen, raw)
		assert.Len(t, seen, 36)
	}
}

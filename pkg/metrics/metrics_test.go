package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/books/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.GET("/metrics", m.Handler())
	return r
}

// TestGinMiddleware 测试请求指标采集
func TestGinMiddleware(t *testing.T) {
	m := New()
	r := newTestRouter(m)

	// 访问两次业务接口
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/books/42", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// 抓取/metrics
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// path标签使用路由模板而非实际路径,避免标签基数爆炸
	assert.Contains(t, body, `http_requests_total{method="GET",path="/books/:id",status="200"} 2`)
	assert.NotContains(t, body, `path="/books/42"`)
	assert.Contains(t, body, "http_request_duration_seconds")
}

// TestUnmatchedRoute 测试未命中路由的请求
func TestUnmatchedRoute(t *testing.T) {
	m := New()
	r := newTestRouter(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/no/such/route", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Contains(t, w.Body.String(), `path="unmatched"`)
}

// TestIndependentRegistry 测试每个实例使用独立Registry
func TestIndependentRegistry(t *testing.T) {
	// 两次New()不会因重复注册而panic
	m1 := New()
	m2 := New()

	r1 := newTestRouter(m1)
	w := httptest.NewRecorder()
	r1.ServeHTTP(w, httptest.NewRequest("GET", "/books/1", nil))

	// m2没有收到任何请求
	r2 := gin.New()
	r2.GET("/metrics", m2.Handler())
	w = httptest.NewRecorder()
	r2.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.False(t, strings.Contains(w.Body.String(), `status="200"} 1`))
}

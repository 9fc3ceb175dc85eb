package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"volunet-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCorsSingleOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Init()
	config.Get().Cors.Origin = "http://localhost:3000"

	r := gin.New()
	r.Use(Cors())
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// 预检请求直接放行
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	// 普通请求携带 CORS 头
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

func clientIP(t *testing.T, cfg *config.Config) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewEngine(cfg)
	require.NoError(t, err)
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.1.2.3:4567"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Body.String()
}

func TestNewEngine_IgnoresForwardedForByDefault(t *testing.T) {
	assert.Equal(t, "10.1.2.3", clientIP(t, &config.Config{}))
}

func TestNewEngine_TrustsConfiguredProxies(t *testing.T) {
	assert.Equal(t, "203.0.113.9", clientIP(t, &config.Config{TrustedProxies: []string{"10.0.0.0/8"}}))
}

func TestNewEngine_InvalidProxy(t *testing.T) {
	_, err := NewEngine(&config.Config{TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("OFF_CATALOG_POLICY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "ignore", cfg.OffCatalogPolicy)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("OFF_CATALOG_POLICY", "REJECT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "abc")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "reject", cfg.OffCatalogPolicy)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.OTELEnabled)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("app:\n  env: dev\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, 8080, cfg.Server.Http)
	assert.Equal(t, 512, cfg.QRCode.DefaultSize)
	assert.Equal(t, 64, cfg.QRCode.MinSize)
	assert.Equal(t, 2048, cfg.QRCode.MaxSize)
	assert.Equal(t, 0.5, cfg.Frame.QRRatio)
	assert.Equal(t, CacheOff, cfg.Directory.Cache)
	assert.Equal(t, "results", cfg.Directory.ResultsPath)
	assert.Equal(t, 10*time.Minute, cfg.Directory.CacheTTL)
	assert.False(t, cfg.Production())
}

func TestParse_File(t *testing.T) {
	src := `
app:
  env: prod
  base_url: https://suivi.example.org
directory:
  base_url: https://directory.example.org
  cache: memory
  cache_ttl: 1m
  timeout: 3s
qrcode:
  dark_color: "#112233"
messengers:
  - name: telegram
    link_base: "https://t.me/bot?start="
    search_verb_only: true
  - name: signal
`
	cfg, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, time.Minute, cfg.Directory.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Directory.Timeout)
	assert.Equal(t, "#112233", cfg.QRCode.DarkColor)
	assert.Equal(t, "#ffffff", cfg.QRCode.LightColor)

	m, ok := cfg.Messenger("telegram")
	require.True(t, ok)
	assert.True(t, m.Configured())
	assert.True(t, m.SearchVerbOnly)

	m, ok = cfg.Messenger("signal")
	require.True(t, ok)
	assert.False(t, m.Configured())

	_, ok = cfg.Messenger("whatsapp")
	assert.False(t, ok)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SUIVI_BASE_URL", "https://override.example.org")
	t.Setenv("SUIVI_HTTP_PORT", "9000")
	t.Setenv("SUIVI_DIRECTORY_API_KEY", "secret")

	cfg, err := Parse([]byte("app:\n  base_url: https://file.example.org\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.org", cfg.App.BaseURL)
	assert.Equal(t, 9000, cfg.Server.Http)
	assert.Equal(t, "secret", cfg.Directory.APIKey)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("app: [unclosed"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `host: payflowpro.paypal.com
timeout: 30
loglevel: debug
credentials:
  vendor: acme
  partner: PayPal
  password: secret
proxy:
  address: proxy.internal
  port: 3128
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestReadApplicationConfig(t *testing.T) {
	cfg, err := ReadApplicationConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "payflowpro.paypal.com", cfg.Host)
	assert.Equal(t, 443, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, CredentialsConfig{Vendor: "acme", Partner: "PayPal", Password: "secret"}, cfg.Credentials)
	assert.Equal(t, ProxyConfig{Address: "proxy.internal", Port: 3128}, cfg.Proxy)
	assert.NoError(t, cfg.Validate(nil))
}

func TestReadApplicationConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("PAYFLOW_CREDENTIALS_VENDOR", "fromenv")
	t.Setenv("PAYFLOW_PORT", "8443")

	cfg, err := ReadApplicationConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Credentials.Vendor)
	assert.Equal(t, 8443, cfg.Port)
}

func TestReadApplicationConfigBadFile(t *testing.T) {
	_, err := ReadApplicationConfig(writeConfig(t, "host: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 443, Timeout: 45, Proxy: ProxyConfig{Address: "proxy"}}
	ctx := sdkerr.NewContext()

	err := cfg.Validate(ctx)
	require.Error(t, err)
	assert.True(t, sdkerr.IsKind(err, sdkerr.KindConfig))
	assert.Contains(t, err.Error(), "host is required")
	assert.Contains(t, err.Error(), "proxy.port")

	assert.Equal(t, 5, ctx.Len())
	assert.Equal(t, sdkerr.SeverityFatal, ctx.Highest())
}

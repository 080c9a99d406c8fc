package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"loyalty": map[string]any{
			"fraudWindow":     "60s",
			"rotationWorkers": 4,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "LOYALTY_FRAUDWINDOW", want: "loyalty.fraudWindow"},
		{envKey: "LOYALTY_ROTATIONWORKERS", want: "loyalty.rotationWorkers"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: develop
  serviceName: loyalty
loyalty:
  fraudWindow: 30s
  rotationWorkers: 2
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loyaltytest.yaml"), yamlBody, 0o600))

	t.Setenv("LOYALTY_FRAUDWINDOW", "90s")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("loyaltytest", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Loyalty)

	assert.Equal(t, "loyalty", cfg.Env.ServiceName)
	assert.Equal(t, 90*time.Second, cfg.Loyalty.FraudWindow)
	assert.Equal(t, 2, cfg.Loyalty.RotationWorkers)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 60*time.Second, cfg.Loyalty.FraudWindow)
	assert.Equal(t, 30*24*time.Hour, cfg.Loyalty.RedemptionValidity)
	assert.Equal(t, defaultRotationWorkers, cfg.Loyalty.RotationWorkers)
	assert.Equal(t, defaultMaxGenerateAttempts, cfg.Loyalty.MaxGenerateAttempts)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Zero(t, cfg.Loyalty.CodeTTL)
}

func TestDefaultLoyaltyConfig(t *testing.T) {
	lc := DefaultLoyaltyConfig()

	assert.Equal(t, defaultIdentifierKeepCount, lc.IdentifierKeepCount)
	assert.Equal(t, defaultPublishTimeout, lc.PublishTimeout)
}

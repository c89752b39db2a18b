package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "https://ocr.api.cloud.yandex.net/ocr/v1", cfg.Vision.BaseURL)
	assert.Equal(t, "https://operation.api.cloud.yandex.net/operations", cfg.Vision.OperationBaseURL)
	assert.Equal(t, uint64(2), cfg.Vision.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Vision.Timeout)
	assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	assert.Equal(t, 500*time.Millisecond, cfg.Transport.BaseDelay)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("VISION_MAX_RETRIES", "5")
	t.Setenv("VISION_TIMEOUT", "10s")
	t.Setenv("RETRY_BASE_DELAY", "100ms")
	t.Setenv("LLM_TEMPERATURE", "0.3")

	cfg := LoadConfig()
	assert.Equal(t, uint64(5), cfg.Vision.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Vision.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Transport.BaseDelay)
	assert.InDelta(t, 0.3, float64(cfg.LLM.Temperature), 0.001)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("VISION_MAX_RETRIES", "lots")
	t.Setenv("VISION_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, uint64(2), cfg.Vision.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Vision.Timeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/docflow")
	t.Setenv("VISION_API_KEY", "vk")
	t.Setenv("LLM_API_KEY", "lk")
	t.Setenv("LLM_MODEL_URI", "gpt://folder/yandexgpt")

	require.NoError(t, LoadConfig().Validate())

	t.Setenv("LLM_MODEL_URI", "")
	err := LoadConfig().Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

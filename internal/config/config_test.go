package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"mode": "custom",
		"api_key": "sk-test",
		"base_url": "https://llm.internal.example.com/v1",
		"model": "qwen-plus",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ModeCustom, cfg.Mode)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "https://llm.internal.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "qwen-plus", cfg.Model)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := &Config{Mode: "carrier-pigeon"}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_InvalidBaseURL(t *testing.T) {
	cfg := &Config{Mode: ModeDemo, BaseURL: "not a url"}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_ModeRequirements(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "demo needs nothing", cfg: Config{Mode: ModeDemo}},
		{name: "deepseek with key", cfg: Config{Mode: ModeDeepSeek, APIKey: "sk-test"}},
		{name: "deepseek without key", cfg: Config{Mode: ModeDeepSeek}, wantErr: "requires an API key"},
		{name: "gemini without key", cfg: Config{Mode: ModeGemini}, wantErr: "requires an API key"},
		{
			name: "custom complete",
			cfg:  Config{Mode: ModeCustom, APIKey: "sk-test", BaseURL: "https://example.com/v1", Model: "qwen-plus"},
		},
		{
			name:    "custom without base URL",
			cfg:     Config{Mode: ModeCustom, APIKey: "sk-test", Model: "qwen-plus"},
			wantErr: "requires a base URL",
		},
		{
			name:    "custom without model",
			cfg:     Config{Mode: ModeCustom, APIKey: "sk-test", BaseURL: "https://example.com/v1"},
			wantErr: "requires a model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "sk-cli"}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, ModeDemo, merged.Mode)
	assert.Equal(t, "out", merged.OutDir)
	assert.Equal(t, "sk-cli", merged.APIKey)
}

func TestMergeWithDefaults_ExplicitWins(t *testing.T) {
	cfg := Config{Mode: ModeDeepSeek, OutDir: "artifacts"}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, ModeDeepSeek, merged.Mode)
	assert.Equal(t, "artifacts", merged.OutDir)
}

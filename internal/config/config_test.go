package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"target_role": "Backend Engineer",
		"industry": "fintech",
		"port": 8080,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Backend Engineer", cfg.TargetRole)
	assert.Equal(t, "fintech", cfg.Industry)
	assert.Equal(t, 8080, cfg.Port)
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

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingCVFile(t *testing.T) {
	cfg := &Config{CV: "/nonexistent/cv.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cv file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TargetRole: "SRE"}
	defaults := Config{
		TargetRole:  "Backend Engineer",
		Industry:    "fintech",
		Port:        8080,
		DatabaseURL: "postgres://localhost/cv_scorer",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win; missing values come from defaults.
	assert.Equal(t, "SRE", merged.TargetRole)
	assert.Equal(t, "fintech", merged.Industry)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "postgres://localhost/cv_scorer", merged.DatabaseURL)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := &Config{APIKey: "explicit-key"}
	cfg.FromEnv()

	assert.Equal(t, "explicit-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

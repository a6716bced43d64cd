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
		"name": "Test User",
		"email": "test@example.com",
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Test User", cfg.Name)
	assert.Equal(t, "test@example.com", cfg.Email)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "nope.txt")}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Name: "Explicit Name"}
	merged := cfg.MergeWithDefaults(Config{
		Name:     "Default Name",
		Email:    "default@example.com",
		Compiler: "pdflatex",
		Port:     8080,
	})

	assert.Equal(t, "Explicit Name", merged.Name)
	assert.Equal(t, "default@example.com", merged.Email)
	assert.Equal(t, "pdflatex", merged.Compiler)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_Timeouts(t *testing.T) {
	cfg := &Config{RenderTimeout: 90}
	merged := cfg.MergeWithDefaults(Config{
		WorkDir:          "/tmp/render",
		SynthesisTimeout: 30,
		RenderTimeout:    60,
	})

	assert.Equal(t, "/tmp/render", merged.WorkDir)
	assert.Equal(t, 30, merged.SynthesisTimeout)
	assert.Equal(t, 90, merged.RenderTimeout)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{SynthesisTimeout: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "synthesis_timeout")

	cfg = &Config{RenderTimeout: -5}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "render_timeout")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{APIKey: "flag-key"}
	cfg.ApplyEnv()

	// Explicit value wins; empty field is filled from the environment
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}

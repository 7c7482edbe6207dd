package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"role": "software-engineer",
		"verbose": true,
		"port": 9090,
		"fetch_timeout": "45s"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "software-engineer", cfg.Role)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.FetchTimeoutDuration(time.Second))
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobInputs(t *testing.T) {
	cfg := Config{Role: "software-engineer", JobURL: "https://example.com/job"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadFetchTimeout(t *testing.T) {
	cfg := Config{FetchTimeout: "soon"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_OK(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("job text"), 0o644))

	cfg := Config{Job: jobPath, Port: 8080, FetchTimeout: "30s"}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Role: "data-scientist"}
	defaults := Config{Role: "software-engineer", Port: 8080, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "data-scientist", merged.Role)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
}

func TestFetchTimeoutDuration_Fallback(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 30*time.Second, cfg.FetchTimeoutDuration(30*time.Second))
}

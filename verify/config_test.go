package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()

	assert.Equal(t, "pcheck", config.Name)
	assert.False(t, config.Strict)
	assert.Equal(t, "gemini-2.5-flash", config.Prove.Model)
	assert.Equal(t, 3, config.Prove.MaxAttempts)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig(filepath.Join(os.TempDir(), "no-such-config.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".pcheck.yaml")

	content := `name: myproofs
strict: true
prove:
  model: gemini-2.0-pro
  max_attempts: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "myproofs", config.Name)
	assert.True(t, config.Strict)
	assert.Equal(t, "gemini-2.0-pro", config.Prove.Model)
	assert.Equal(t, 5, config.Prove.MaxAttempts)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".pcheck.yaml")

	require.NoError(t, os.WriteFile(path, []byte("strict: true\n"), 0o644))

	config, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.True(t, config.Strict)
	assert.Equal(t, "pcheck", config.Name)
	assert.Equal(t, "gemini-2.5-flash", config.Prove.Model)
	assert.Equal(t, 3, config.Prove.MaxAttempts)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".pcheck.yaml")

	require.NoError(t, os.WriteFile(path, []byte("strict: [oops\n"), 0o644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".pcheck.yaml")

	want := Config{
		Name:   "roundtrip",
		Strict: true,
		Prove: ProveConfig{
			Model:       "gemini-2.5-flash",
			MaxAttempts: 7,
		},
	}
	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

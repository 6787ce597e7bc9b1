package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Zero(t, cfg.MaxExpressionLength)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calcd.yaml")
	content := `
addr: ":9090"
max_expression_length: 64
allowed_origins:
  - "https://calc.example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 64, cfg.MaxExpressionLength)
	assert.Equal(t, []string{"https://calc.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calcd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_expression_length: 32\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 32, cfg.MaxExpressionLength)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultSourceDialect, cfg.SourceDialect)
	assert.Equal(t, DefaultTargetDialect, cfg.TargetDialect)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	path := filepath.Join(dir, "sqlbridge.yaml")
	content := "source_dialect: mysql\ntarget_dialect: singlestore\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.SourceDialect)
	assert.Equal(t, "singlestore", cfg.TargetDialect)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("SQLBRIDGE_TARGET_DIALECT", "mysql")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.TargetDialect)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("SQLBRIDGE_SOURCE_DIALECT", "mysql")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("from", "", "")
	flags.String("to", "", "")
	require.NoError(t, flags.Parse([]string{"--from", "singlestore"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// --from maps to source_dialect and beats the env var
	assert.Equal(t, "singlestore", cfg.SourceDialect)
	// --to was not set, so the default survives
	assert.Equal(t, DefaultTargetDialect, cfg.TargetDialect)
}

func TestGetCurrentConfigFallback(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg := GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultSourceDialect, cfg.SourceDialect)
}

func TestGetLoggerFallback(t *testing.T) {
	logger := GetLogger(context.Background())
	assert.NotNil(t, logger)
}

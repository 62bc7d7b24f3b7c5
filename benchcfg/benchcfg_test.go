package benchcfg_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hwbench/benchcfg"
	"github.com/katalvlaran/hwbench/locality"
)

// writeConfig drops a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestDefault_MirrorsPackages keeps the config defaults pinned to each
// package's DefaultOptions.
func TestDefault_MirrorsPackages(t *testing.T) {
	cfg := benchcfg.Default()

	assert.Equal(t, 32768, cfg.Branch.Size)
	assert.Equal(t, 100000, cfg.Branch.Repetitions)
	assert.False(t, cfg.Branch.Sorted)

	assert.Equal(t, 2000, cfg.Cache.N)
	assert.Equal(t, "naive", cfg.Cache.Mode)
	assert.Equal(t, 300, cfg.Cache.Flush)
	assert.Equal(t, time.Second, cfg.Cache.Pause)

	require.NoError(t, benchcfg.Verify(cfg))
}

// TestLoad_NoFile verifies the default layer alone yields a valid config.
func TestLoad_NoFile(t *testing.T) {
	cfg, err := benchcfg.Load("")
	require.NoError(t, err)
	assert.Equal(t, benchcfg.Default(), cfg)
}

// TestLoad_FileOverridesDefaults layers a partial YAML file over defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
branch:
  size: 1024
  sorted: true
cache:
  n: 64
  mode: transposed
  flush: 16
  pause: 50ms
`)

	cfg, err := benchcfg.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Branch.Size)
	assert.True(t, cfg.Branch.Sorted)
	assert.Equal(t, 100000, cfg.Branch.Repetitions, "untouched keys keep defaults")

	assert.Equal(t, 64, cfg.Cache.N)
	assert.Equal(t, "transposed", cfg.Cache.Mode)
	assert.Equal(t, 16, cfg.Cache.Flush)
	assert.Equal(t, 50*time.Millisecond, cfg.Cache.Pause)
}

// TestLoad_EnvOverridesFile checks the env layer wins over the file layer.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "cache:\n  n: 64\n")
	t.Setenv("HWBENCH_CACHE_N", "128")
	t.Setenv("HWBENCH_BRANCH_SEED", "7")

	cfg, err := benchcfg.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Cache.N)
	assert.Equal(t, int64(7), cfg.Branch.Seed)
}

// TestLoad_MissingFile surfaces the file error instead of silently skipping.
func TestLoad_MissingFile(t *testing.T) {
	_, err := benchcfg.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestVerify_Rejections walks the validation matrix.
func TestVerify_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*benchcfg.Config)
	}{
		{"ZeroBranchSize", func(c *benchcfg.Config) { c.Branch.Size = 0 }},
		{"NegativeRepetitions", func(c *benchcfg.Config) { c.Branch.Repetitions = -5 }},
		{"NegativeN", func(c *benchcfg.Config) { c.Cache.N = -1 }},
		{"NegativeFlush", func(c *benchcfg.Config) { c.Cache.Flush = -1 }},
		{"NegativePause", func(c *benchcfg.Config) { c.Cache.Pause = -time.Second }},
		{"BadMode", func(c *benchcfg.Config) { c.Cache.Mode = "diagonal" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := benchcfg.Default()
			tc.mutate(cfg)
			assert.Error(t, benchcfg.Verify(cfg))
		})
	}
}

// TestCacheSection_Options converts MiB and mode name into locality.Options.
func TestCacheSection_Options(t *testing.T) {
	cfg := benchcfg.Default()
	cfg.Cache.Mode = "transpose" // historical spelling must keep working
	cfg.Cache.Flush = 2

	opts, err := cfg.Cache.Options()
	require.NoError(t, err)
	assert.Equal(t, locality.Transposed, opts.Mode)
	assert.Equal(t, 2*1024*1024, opts.FlushBytes)

	cfg.Cache.Mode = "nonsense"
	_, err = cfg.Cache.Options()
	assert.ErrorIs(t, err, locality.ErrBadMode)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaderboard/config"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultConfig(), cfg)
	assert.Equal(t, "/data.json", cfg.DataPath)
	assert.Equal(t, "/fireworks.gif", cfg.GIFPath)
	assert.Equal(t, 200*time.Millisecond, cfg.Tick)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig([]string{"-source", "demo", "-tick", "50ms", "-demo-step", "5", "-port", "", "-gif", ""})
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Source)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.Equal(t, 5.0, cfg.DemoStep)
	assert.Empty(t, cfg.WebPort)
	assert.Empty(t, cfg.GIFPath)
}

func TestParseConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"source": "sheet",
		"sheet_path": "/srv/roster.xlsx",
		"tick": "1s",
		"gif_duration": "3s",
		"sink": "null"
	}`), 0o644))

	t.Setenv(EnvSink, "terminal")
	cfg, err := ParseConfig([]string{"-config", path, "-tick", "100ms"})
	require.NoError(t, err)

	assert.Equal(t, "sheet", cfg.Source)
	assert.Equal(t, "/srv/roster.xlsx", cfg.SheetPath)
	assert.Equal(t, 3*time.Second, cfg.GIFDuration)
	// 命令行覆盖配置文件
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
	// 环境变量覆盖一切
	assert.Equal(t, "terminal", cfg.Sink)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv(EnvSource, "redis")
	t.Setenv(EnvRedisAddr, "10.0.0.5:6379")
	t.Setenv(EnvRedisPassword, "hunter2")
	t.Setenv(EnvRedisDB, "3")
	t.Setenv(EnvTick, "250ms")

	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Source)
	assert.Equal(t, "10.0.0.5:6379", cfg.RedisAddr)
	assert.Equal(t, "hunter2", cfg.RedisPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]string{"-no-such-flag"})
	assert.Error(t, err)

	_, err = ParseConfig([]string{"-tick", "0s"})
	assert.Error(t, err)

	_, err = ParseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"tick": "soon"}`), 0o644))
	_, err = ParseConfig([]string{"-config", bad})
	assert.Error(t, err)

	unknown := filepath.Join(t.TempDir(), "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"colour": "red"}`), 0o644))
	_, err = ParseConfig([]string{"-config", unknown})
	assert.Error(t, err)

	t.Setenv(EnvRedisDB, "zero")
	_, err = ParseConfig(nil)
	assert.Error(t, err)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	assert.Contains(t, buf.String(), "-source")
	assert.Contains(t, buf.String(), EnvRedisAddr)
}

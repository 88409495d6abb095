package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 10, cfg.Browse.PageSize)
	assert.Equal(t, time.Second, cfg.Browse.Debounce)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
browse:
  page_size: 25
  debounce: 300ms
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Browse.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Browse.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "browse:\n  page_size: 5\n")

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Browse.PageSize)
	assert.Equal(t, time.Second, cfg.Browse.Debounce)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "browse:\n  page_size: 5\n")

	cfg, err := Load(path, envMap(map[string]string{
		EnvPageSize:  "40",
		EnvDebounce:  "150ms",
		EnvLogLevel:  "warn",
		EnvLogFormat: "json",
		EnvLogFile:   "/tmp/uistate.log",
	}))
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Browse.PageSize)
	assert.Equal(t, 150*time.Millisecond, cfg.Browse.Debounce)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/uistate.log", cfg.Logging.File)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	cfg, err := Load("", envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), envMap(nil))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "zero page size", content: "browse:\n  page_size: 0\n"},
		{name: "page size too large", content: "browse:\n  page_size: 5000\n"},
		{name: "negative debounce", content: "browse:\n  debounce: -1s\n"},
		{name: "unknown level", content: "logging:\n  level: chatty\n"},
		{name: "unknown format", content: "logging:\n  format: xml\n"},
		{name: "malformed yaml", content: "browse: [\n"},
		{name: "bad env page size", env: map[string]string{EnvPageSize: "ten"}},
		{name: "bad env debounce", env: map[string]string{EnvDebounce: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path, envMap(tt.env))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	ResetGlobalConfigForTest()
	assert.Equal(t, New(), GetGlobalConfig())

	custom := New()
	custom.Logging.Level = "debug"
	SetGlobalConfig(custom)
	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetGlobalConfig_ConcurrentLazyDefault(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)
	ResetGlobalConfigForTest()

	const readers = 32
	got := make([]*Config, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = GetGlobalConfig()
		}()
	}
	wg.Wait()

	for _, cfg := range got {
		assert.Same(t, got[0], cfg, "every reader sees the same default instance")
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestToLoggingConfig(t *testing.T) {
	var buf bytes.Buffer
	lc := LoggingConfig{Level: "warn", Format: "json", File: "/tmp/x.log"}

	out := lc.ToLoggingConfig(&buf)
	assert.Equal(t, "warn", out.Level)
	assert.Equal(t, "json", out.Format)
	assert.Equal(t, "/tmp/x.log", out.File)
	assert.Same(t, &buf, out.Output)
}

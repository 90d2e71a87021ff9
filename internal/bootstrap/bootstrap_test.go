package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("session_2025-05-%02d_10-00-00.log", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2025-05-12_10-00-00.log")
	assert.NotContains(t, names, "session_2025-05-03_10-00-00.log")
	assert.Contains(t, names, "session_2025-05-04_10-00-00.log")
}

func TestSetupLogger_WritesFileAndStdout(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		LogLevel:    "info",
		LogFormat:   "json",
		Environment: "test",
		ServiceName: "lucky-draw",
		Version:     "test",
		APIKey:      config.ExampleAPIKey,
	}
	var stdout bytes.Buffer
	now := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	f, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2025-05-01_09-30-00.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)
	assert.Contains(t, stdout.String(), LogMsgConfigWarning)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(data))
}

type recordingStopper struct {
	order *[]string
	err   error
}

func (s recordingStopper) Stop(context.Context) error {
	*s.order = append(*s.order, "server")
	return s.err
}

type recordingStore struct{ order *[]string }

func (s recordingStore) Ping(context.Context) error { return nil }
func (s recordingStore) Close()                     { *s.order = append(*s.order, "store") }

func TestGracefulShutdown_Order(t *testing.T) {
	tests := []struct {
		name    string
		stopErr error
	}{
		{"clean", nil},
		{"server error still closes store", assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			GracefulShutdown(context.Background(), ShutdownComponents{
				Server: recordingStopper{order: &order, err: tt.stopErr},
				Store:  recordingStore{order: &order},
			})
			assert.Equal(t, []string{"server", "store"}, order)
		})
	}
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "data", "draws.db")}

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Ping(context.Background()))
	categories, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{DBDriver: "mysql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestRosterOptions(t *testing.T) {
	t.Run("no schema configured", func(t *testing.T) {
		opts, err := RosterOptions(&config.Config{})
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("schema loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.schema.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"type": "object"}`), 0o644))

		opts, err := RosterOptions(&config.Config{ExtraInfoSchema: path})
		require.NoError(t, err)
		assert.Len(t, opts, 1)
	})

	t.Run("missing schema file", func(t *testing.T) {
		_, err := RosterOptions(&config.Config{ExtraInfoSchema: filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadSchema)
	})
}

func TestRosterCacheConfig(t *testing.T) {
	cfg := &config.Config{CategoryCacheSize: 50, CategoryCacheTTL: time.Minute}

	got := RosterCacheConfig(cfg)

	assert.Equal(t, 50, got.Size)
	assert.Equal(t, time.Minute, got.TTL)
}

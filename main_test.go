package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wordsearch/internal/state"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "ENV", "SESSION_TIMEOUT", "RATE_LIMIT_RPS", "SESSION_DIR", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}
	cfg := loadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 2*time.Hour, cfg.SessionTimeout)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	assert.Equal(t, "data/sessions", cfg.SessionDir)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.MaxUploadBytes)
	assert.Equal(t, "development", cfg.envName())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_TIMEOUT", "30m")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("SESSION_DIR", "/tmp/ws")
	cfg := loadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, "/tmp/ws", cfg.SessionDir)
	assert.Equal(t, "production", cfg.envName())
}

func TestBootstrap_LogsInvalidValues(t *testing.T) {
	original := logger
	defer func() { logger = original }()

	t.Setenv("GIN_MODE", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SESSION_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	var warnings []string
	record := zap.Hooks(func(e zapcore.Entry) error {
		if e.Level == zapcore.WarnLevel {
			warnings = append(warnings, e.Message)
		}
		return nil
	})

	cfg, err := bootstrap(record)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.SessionTimeout)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "SESSION_TIMEOUT")
	assert.Contains(t, warnings[1], "RATE_LIMIT_RPS")
}

func TestCleanupInterval(t *testing.T) {
	assert.Equal(t, time.Hour, cleanupInterval(2*time.Hour))
	assert.Equal(t, time.Minute, cleanupInterval(10*time.Second))
}

func TestRunCleanupJob(t *testing.T) {
	app := testApp(t)
	app.Config.SessionTimeout = time.Minute

	idle := uuid.NewString()
	app.Sessions[idle] = Session{State: state.New(), LastAccessTime: time.Now().Add(-time.Hour)}
	stale := filepath.Join(app.Config.SessionDir, idle+".json")
	if err := os.WriteFile(stale, []byte("{}"), 0644); err != nil {
		t.Fatalf("write stale session: %v", err)
	}
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.runCleanupJob(ctx, time.Hour)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, err := os.Stat(stale)
		return os.IsNotExist(err) && app.sessionCount() == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runCleanupJob did not stop after cancel")
	}
}

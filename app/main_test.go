package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/talentflow/app/jobs"
	"github.com/umputun/talentflow/app/store"
	"github.com/umputun/talentflow/app/web"
)

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	opts.Log.Enabled = false
	assert.Equal(t, os.Stdout, setupLogs())
}

func Test_setupLogsToFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "talentflow.log")
	opts.Log.Enabled = true
	opts.Log.Filename = fname
	opts.Log.MaxSize = 100
	opts.Log.MaxBackups = 7
	opts.Log.MaxAge = 0
	opts.Log.EnabledCompress = false
	defer func() { opts.Log.Enabled, opts.Log.Filename = false, "" }()

	out := setupLogs()
	assert.IsType(t, &lumberjack.Logger{}, out)

	logger := out.(*lumberjack.Logger)
	assert.Equal(t, fname, logger.Filename)
	assert.Equal(t, 100, logger.MaxSize)
	assert.Equal(t, 7, logger.MaxBackups)
	assert.Equal(t, 0, logger.MaxAge)
	assert.False(t, logger.Compress)
	require.NoError(t, logger.Close())
}

func Test_makeWebConfig(t *testing.T) {
	repo := jobs.NewRepository(store.NewMemory())

	opts.API.TestMode = false
	opts.Notify.Webhooks = nil
	cfg := makeWebConfig(repo)
	assert.Nil(t, cfg.Notifier, "no webhooks, no notifier")
	assert.InDelta(t, 0, cfg.ReorderFailureRate, 0.0001)

	opts.API.TestMode = true
	opts.API.WriteLimit = 5
	opts.Notify.Webhooks = []string{"http://localhost:9999/hook"}
	defer func() { opts.API.TestMode, opts.API.WriteLimit, opts.Notify.Webhooks = false, 0, nil }()
	cfg = makeWebConfig(repo)
	assert.NotNil(t, cfg.Notifier)
	assert.InDelta(t, web.TestModeFailureRate, cfg.ReorderFailureRate, 0.0001)
	assert.InDelta(t, 5, cfg.WriteLimit, 0.0001)
}

func Test_run(t *testing.T) {
	opts.Store.Type = "sqlite"
	opts.Store.Path = filepath.Join(t.TempDir(), "test.db")
	opts.Listen = "127.0.0.1:38191"
	opts.Backup.Dir = ""

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:38191/api/jobs")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run not terminated")
	}
}

func Test_runBadStore(t *testing.T) {
	opts.Store.Type = "bad"
	defer func() { opts.Store.Type = "sqlite" }()
	err := run(context.Background())
	assert.ErrorContains(t, err, `unsupported store type "bad"`)
}

func Test_runImport(t *testing.T) {
	repo := jobs.NewRepository(store.NewMemory())
	srv, err := web.New(web.Config{Repository: repo})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	fname := filepath.Join(t.TempDir(), "import.yml")
	require.NoError(t, os.WriteFile(fname, []byte("jobs:\n  - title: Go Developer\n  - title: Product Manager\n"), 0o600))

	opts.Import.File = fname
	opts.Import.Server = ts.URL
	opts.Import.Concurrency = 2
	opts.Import.Attempts = 1
	defer func() { opts.Import.File = "" }()

	require.NoError(t, runImport(context.Background()))
	_, err = repo.Get(context.Background(), "go-developer")
	assert.NoError(t, err)

	opts.Import.File = filepath.Join(t.TempDir(), "missing.yml")
	assert.Error(t, runImport(context.Background()))
}

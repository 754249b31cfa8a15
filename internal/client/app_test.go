package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/state"
)

type remoteRecorder struct {
	mu     sync.Mutex
	bodies map[string][]string
}

func (r *remoteRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	r.bodies[req.URL.Path] = append(r.bodies[req.URL.Path], string(body))
	r.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
}

func (r *remoteRecorder) get(path string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.bodies[path]...)
}

func newTestConfig(t *testing.T, remoteURL, dbPath string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Remote:  config.ClientRemote{URL: remoteURL, RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dbPath}},
		Sync: config.ClientSync{
			DebounceDelay:  time.Hour,
			MaxAttempts:    2,
			RetryBaseDelay: time.Millisecond,
		},
		Server:  config.ClientServer{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second},
		Workers: config.ClientWorkers{ResyncInterval: time.Hour},
	}
}

func TestApp_ShutdownFlushesPendingSyncs(t *testing.T) {
	recorder := &remoteRecorder{bodies: map[string][]string{}}
	remote := httptest.NewServer(recorder)
	defer remote.Close()

	dbPath := filepath.Join(t.TempDir(), "tabsync.db")
	ctx := context.Background()

	app, err := NewApp(ctx, newTestConfig(t, remote.URL, dbPath), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.start(ctx))

	_, err = app.state.AddTask(ctx, state.NewTask{Title: "pay internet"})
	require.NoError(t, err)
	_, err = app.state.TopUp(ctx, 50_000, nil)
	require.NoError(t, err)

	// the debounce delay is an hour, only the shutdown flush can deliver these
	require.NoError(t, app.shutdown())

	tasks := recorder.get("/rest/v1/tasks")
	require.Len(t, tasks, 1)
	assert.Contains(t, tasks[0], "pay internet")
	assert.Len(t, recorder.get("/rest/v1/running_tab"), 1)
	assert.Len(t, recorder.get("/rest/v1/tab_history"), 1)
	assert.Empty(t, recorder.get("/rest/v1/expenses"))
}

func TestApp_StateSurvivesRestart(t *testing.T) {
	remote := httptest.NewServer(&remoteRecorder{bodies: map[string][]string{}})
	defer remote.Close()

	dbPath := filepath.Join(t.TempDir(), "tabsync.db")
	ctx := context.Background()

	first, err := NewApp(ctx, newTestConfig(t, remote.URL, dbPath), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.start(ctx))
	_, err = first.state.AddExpense(ctx, state.NewExpense{Name: "groceries", Amount: 75_000})
	require.NoError(t, err)
	require.NoError(t, first.shutdown())

	second, err := NewApp(ctx, newTestConfig(t, remote.URL, dbPath), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, second.start(ctx))
	defer func() { _ = second.shutdown() }()

	expenses := second.state.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, "groceries", expenses[0].Name)
}

func TestNewApp_InvalidRemote(t *testing.T) {
	cfg := newTestConfig(t, "", filepath.Join(t.TempDir(), "tabsync.db"))

	app, err := NewApp(context.Background(), cfg, logger.Nop())

	assert.Nil(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create remote store")
}

func TestNewApp_NoServerAddress(t *testing.T) {
	remote := httptest.NewServer(&remoteRecorder{bodies: map[string][]string{}})
	defer remote.Close()
	cfg := newTestConfig(t, remote.URL, filepath.Join(t.TempDir(), "tabsync.db"))
	cfg.Server.HTTPAddress = ""

	_, err := NewApp(context.Background(), cfg, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create server")
}

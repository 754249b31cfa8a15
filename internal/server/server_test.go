package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-tab-keeper/internal/handler/http"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/state"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type nopDispatcher struct{}

func (nopDispatcher) SyncTasks([]models.Task)                     {}
func (nopDispatcher) SyncTags([]models.Tag)                       {}
func (nopDispatcher) SyncOwners([]models.Owner)                   {}
func (nopDispatcher) SyncPermissions(models.PermissionsByOwner)   {}
func (nopDispatcher) SyncRunningTab(models.RunningTab)            {}
func (nopDispatcher) SyncExpenses([]models.Expense)               {}
func (nopDispatcher) SyncTabHistory([]models.TabHistoryEntry)     {}
func (nopDispatcher) SyncScheduledEvents([]models.ScheduledEvent) {}
func (nopDispatcher) MarkHydrated()                               {}

func newTestHandler() *myHTTP.Handler {
	st := state.NewStore(nil, nopDispatcher{}, logger.Nop())
	return myHTTP.NewHandler(st, logger.Nop())
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.ClientServer{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandler(t *testing.T) {
	_, err := NewServer(nil, config.ClientServer{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.ClientServer{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx, ready) }()

	addr := <-ready
	resp, err := http.Get("http://" + addr + "/api/state")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + addr + "/api/state")
	assert.Error(t, err)
}

func TestRun_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv, err := NewServer(newTestHandler(), config.ClientServer{
		HTTPAddress:     occupied.Addr().String(),
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

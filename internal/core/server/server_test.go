package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracksolutions/internal/core/cache"
	"tracksolutions/internal/core/config"
	"tracksolutions/internal/core/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter, mr
}

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}
	sessions, _ := testCache(t)

	logger.Init("development", "debug")
	srv := New(cfg, sessions)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

func TestServer_Health(t *testing.T) {
	logger.Init("development", "error")

	t.Run("Ok", func(t *testing.T) {
		sessions, _ := testCache(t)
		srv := New(&config.AppConfig{ServerPort: 8080}, sessions)

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("StoreDown", func(t *testing.T) {
		sessions, mr := testCache(t)
		srv := New(&config.AppConfig{ServerPort: 8080}, sessions)

		mr.Close()
		resp, err := srv.App.Test(httptest.NewRequest("GET", "/health", nil), 5000)

		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	sessions, _ := testCache(t)
	srv := New(cfg, sessions)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.App.Shutdown()
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}

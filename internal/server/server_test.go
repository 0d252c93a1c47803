package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feira-digital/mercado-api/internal/config"
	"github.com/feira-digital/mercado-api/internal/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer_NilHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	require.ErrorIs(t, err, errNoServersAreCreated)
}

// TestRun_ReturnsWhenListenFails starts the server on an address that is
// already taken and expects run to come back with the listen error instead of
// blocking until a stop signal.
func TestRun_ReturnsWhenListenFails(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	s := &server{
		httpServer: newHTTPServer(
			okHandler(),
			config.Server{HTTPAddress: taken.Addr().String()},
			logger.Nop(),
		),
		logger: logger.Nop(),
	}

	done := make(chan error, 1)
	go func() { done <- s.run() }()

	select {
	case runErr := <-done:
		assert.Error(t, runErr)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the listen failure")
	}
}

// TestHTTPServer_GracefulShutdownReturnsNil verifies that a Shutdown-initiated
// stop is not reported as a serve error.
func TestHTTPServer_GracefulShutdownReturnsNil(t *testing.T) {
	h := newHTTPServer(
		okHandler(),
		config.Server{HTTPAddress: "127.0.0.1:0"},
		logger.Nop(),
	)

	go func() {
		time.Sleep(50 * time.Millisecond)
		h.Shutdown()
	}()

	done := make(chan error, 1)
	go func() { done <- h.RunServer() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

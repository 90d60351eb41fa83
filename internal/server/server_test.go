package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gamey-gateway/internal/config"
	"github.com/MKhiriev/gamey-gateway/internal/handler"
	myHTTP "github.com/MKhiriev/gamey-gateway/internal/handler/http"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
)

func testHandlers(cfg config.StructuredConfig) *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer_NothingToServe(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: cfg.Server},
		{name: "no HTTP handler", handlers: &handler.Handlers{}, cfg: cfg.Server},
		{name: "no address", handlers: testHandlers(cfg), cfg: config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}

	srv, err := NewServer(testHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}}

	srv, err := NewServer(testHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ln.Addr().String()}}

	srv, err := NewServer(testHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.Error(t, err)
}

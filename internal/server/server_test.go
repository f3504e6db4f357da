package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func freePort(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}
func TestServer_RunAndShutdown(t *testing.T) {
	port := freePort(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := NewServer(configs.ServerConfig{Port: port, ReadTimeout: time.Second, WriteTimeout: time.Second}, handler, zap.NewNop())
	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	require.NoError(t, <-runErr)
}

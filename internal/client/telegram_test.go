package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, parseMode string) *TelegramClient {
	return NewTelegramClient(configs.TelegramConfig{
		BotToken:       "test-token",
		ChatID:         "12345",
		BaseURL:        baseURL,
		ParseMode:      parseMode,
		RequestTimeout: 5 * time.Second,
	})
}
func TestSendMessage_Success(t *testing.T) {
	var calls int32
	var received sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer server.Close()
	result, err := newTestClient(server.URL, "Markdown").SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, "12345", received.ChatID)
	require.Equal(t, "hello", received.Text)
	require.Equal(t, "Markdown", received.ParseMode)
}
func TestSendMessage_PlainTextOmitsParseMode(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()
	_, err := newTestClient(server.URL, "").SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	_, ok := raw["parse_mode"]
	require.False(t, ok)
}
func TestSendMessage_APIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()
	result, err := newTestClient(server.URL, "Markdown").SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	require.False(t, result.OK)
	require.Equal(t, 400, result.ErrorCode)
	require.Equal(t, "Bad Request: chat not found", result.Description)
}
func TestSendMessage_NetworkError(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1", "Markdown").SendMessage(context.Background(), "hello")
	require.Error(t, err)
	require.True(t, errors.Is(err, erro.ErrTransport))
	require.NotContains(t, err.Error(), "test-token")
}
func TestSendMessage_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()
	_, err := newTestClient(server.URL, "Markdown").SendMessage(context.Background(), "hello")
	require.ErrorIs(t, err, erro.ErrTransport)
}
func TestSendPhoto_Multipart(t *testing.T) {
	photo := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottest-token/sendPhoto", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "12345", r.FormValue("chat_id"))
		require.Equal(t, "caption text", r.FormValue("caption"))
		require.Equal(t, "Markdown", r.FormValue("parse_mode"))
		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, PhotoFilename, header.Filename)
		require.Equal(t, PhotoContentType, header.Header.Get("Content-Type"))
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, photo, data)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()
	result, err := newTestClient(server.URL, "Markdown").SendPhoto(context.Background(), photo, "caption text")
	require.NoError(t, err)
	require.True(t, result.OK)
}
func TestSendPhoto_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(server.URL, "").SendPhoto(ctx, []byte("x"), "caption")
	require.ErrorIs(t, err, erro.ErrTransport)
	require.ErrorIs(t, err, context.Canceled)
}

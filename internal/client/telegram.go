package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

const (
	MethodSendMessage = "sendMessage"
	MethodSendPhoto   = "sendPhoto"
	PhotoFilename     = "visitor.jpg"
	PhotoContentType  = "image/jpeg"
)

// TelegramClient performs single Bot API calls against one chat. It never
// retries.
type TelegramClient struct {
	client    *http.Client
	baseURL   string
	botToken  string
	chatID    string
	parseMode string
}

func NewTelegramClient(config configs.TelegramConfig) *TelegramClient {
	return &TelegramClient{
		client:    &http.Client{Timeout: config.RequestTimeout},
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		botToken:  config.BotToken,
		chatID:    config.ChatID,
		parseMode: config.ParseMode,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (tg *TelegramClient) SendMessage(ctx context.Context, text string) (*model.NotificationResult, error) {
	body, err := json.Marshal(sendMessageRequest{ChatID: tg.chatID, Text: text, ParseMode: tg.parseMode})
	if err != nil {
		return nil, fmt.Errorf("marshal sendMessage: %w", err)
	}
	return tg.do(ctx, MethodSendMessage, "application/json", bytes.NewReader(body))
}

func (tg *TelegramClient) SendPhoto(ctx context.Context, photo []byte, caption string) (*model.NotificationResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{{"chat_id", tg.chatID}, {"caption", caption}}
	if tg.parseMode != "" {
		fields = append(fields, [2]string{"parse_mode", tg.parseMode})
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, PhotoFilename))
	header.Set("Content-Type", PhotoContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return nil, fmt.Errorf("write photo part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}
	return tg.do(ctx, MethodSendPhoto, mw.FormDataContentType(), &buf)
}

// do issues exactly one request. The reply is decoded whatever the HTTP status,
// since the Bot API reports failures in the JSON envelope.
func (tg *TelegramClient) do(ctx context.Context, method, contentType string, body io.Reader) (*model.NotificationResult, error) {
	endpoint := fmt.Sprintf("%s/bot%s/%s", tg.baseURL, tg.botToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, erro.ErrTransport, stripURL(err))
	}
	req.Header.Set("Content-Type", contentType)
	metrics.RelayBackendRequestsTotal.WithLabelValues(method).Inc()
	resp, err := tg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, erro.ErrTransport, stripURL(err))
	}
	defer resp.Body.Close()
	var result model.NotificationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w: decode response: %w", method, erro.ErrTransport, err)
	}
	return &result, nil
}

// stripURL drops the endpoint from url.Error, since it embeds the bot token.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig holds the account settings of an EmailJS sender.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// EmailJS sends messages through the EmailJS REST API. Message templates
// are looked up by id on the EmailJS side.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

// NewEmailJS returns an EmailJS sender.
func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &EmailJS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type emailJSRequest struct {
	ServiceID   string            `json:"service_id"`
	TemplateID  string            `json:"template_id"`
	UserID      string            `json:"user_id"`
	AccessToken string            `json:"accessToken,omitempty"`
	Params      map[string]string `json:"template_params"`
}

// Send posts msg to EmailJS. Any non-2xx response is an error carrying the
// response body.
func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:   e.cfg.ServiceID,
		TemplateID:  msg.Template,
		UserID:      e.cfg.PublicKey,
		AccessToken: e.cfg.PrivateKey,
		Params:      msg.Params,
	})
	if err != nil {
		return fmt.Errorf("encode emailjs request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs %s: %w", msg.Template, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs %s: status %d: %s", msg.Template, resp.StatusCode, bytes.TrimSpace(detail))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// LogSender writes messages to a logger instead of delivering them. It is
// the sender used when no EmailJS account is configured.
type LogSender struct {
	Logger *zap.Logger
}

// Send logs msg and always succeeds.
func (s LogSender) Send(_ context.Context, msg Message) error {
	l := s.Logger
	if l == nil {
		l = zap.NewNop()
	}
	fields := []zap.Field{zap.String("message_id", msg.ID), zap.String("template", msg.Template)}
	for k, v := range msg.Params {
		fields = append(fields, zap.String(k, v))
	}
	l.Info("notification", fields...)
	return nil
}

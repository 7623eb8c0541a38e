package notify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Mailer sends quotation notifications through an HTTP mail API. One bounded
// attempt per call; retry policy belongs to the caller, not here.
type Mailer struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

type Config struct {
	Endpoint string
	APIKey   string
	From     string
	Timeout  time.Duration
}

func New(cfg Config) *Mailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Mailer{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		client:   &http.Client{Timeout: timeout},
	}
}

type attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Attachments []attachment `json:"attachments,omitempty"`
}

func (m *Mailer) Send(ctx context.Context, recipient, subject, body, attachmentPath string) error {
	const op = "notify.Mailer.Send"

	payload := sendRequest{
		From:    m.from,
		To:      recipient,
		Subject: subject,
		Body:    body,
	}

	if attachmentPath != "" {
		content, err := os.ReadFile(attachmentPath)
		if err != nil {
			return fmt.Errorf("%s: read attachment: %w", op, err)
		}
		payload.Attachments = append(payload.Attachments, attachment{
			Filename: filepath.Base(attachmentPath),
			Content:  base64.StdEncoding.EncodeToString(content),
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: mail api status %d: %s", op, resp.StatusCode, string(detail))
	}

	return nil
}

// Package mailer sends outbound notification mail through the Resend REST API,
// falling back to plain SMTP when configured. Delivery on the notification
// paths is fire-and-forget: callers log failures and never surface them.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"digitalagency/apperrors"
	"digitalagency/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// Email is one rendered message.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

type Mailer struct {
	cfg    config.MailConfig
	client *http.Client
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (m *Mailer) Send(ctx context.Context, to string, email Email) error {
	if m.cfg.SMTPEnabled {
		return m.sendViaSMTP(to, email)
	}
	return m.sendViaResend(ctx, to, email)
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

func (m *Mailer) sendViaResend(ctx context.Context, to string, email Email) error {
	body := resendRequest{
		From:    fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail),
		To:      []string{to},
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return &apperrors.UpstreamError{Service: "mail", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &apperrors.UpstreamError{
			Service: "mail",
			Err:     fmt.Errorf("resend API status %d", resp.StatusCode),
		}
	}

	return nil
}

func (m *Mailer) sendViaSMTP(to string, email Email) error {
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort

	msg := "From: " + m.cfg.FromName + " <" + m.cfg.FromEmail + ">\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + email.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		email.HTML

	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, []byte(msg)); err != nil {
		return &apperrors.UpstreamError{Service: "mail", Err: err}
	}

	return nil
}

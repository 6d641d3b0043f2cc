package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"portfolio-contact-backend/config"
)

const (
	DefaultBaseURL = "https://api.emailjs.com"
	sendPath       = "/api/v1.0/email/send"

	maxPublicTextLen = 200
)

// Sender sends one templated email through the provider.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]any) error
}

// Client calls the EmailJS REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceID  string
	publicKey  string
	privateKey string
}

// SendError is returned when the provider answers with a non-2xx status.
// Text carries the provider's response body.
type SendError struct {
	Status      int
	Text        string
	ContentType string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("emailjs: status %d: %s", e.Status, e.Text)
}

// PublicText returns Text when it is a short single-line plain-text message
// fit to show a visitor, and "" otherwise (HTML error pages, long dumps).
func (e *SendError) PublicText() string {
	if e.ContentType != "" {
		mediaType, _, err := mime.ParseMediaType(e.ContentType)
		if err != nil || mediaType != "text/plain" {
			return ""
		}
	}
	if e.Text == "" || utf8.RuneCountInString(e.Text) > maxPublicTextLen {
		return ""
	}
	if strings.ContainsAny(e.Text, "<>\r\n") {
		return ""
	}
	return e.Text
}

type sendPayload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams map[string]any `json:"template_params"`
}

// NewClient creates an EmailJS client from the application config
func NewClient(cfg *config.Config) *Client {
	baseURL := strings.TrimRight(cfg.EmailJSBaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.EmailJSTimeout},
		baseURL:    baseURL,
		serviceID:  cfg.EmailJSServiceID,
		publicKey:  cfg.EmailJSPublicKey,
		privateKey: cfg.EmailJSPrivateKey,
	}
}

// Send delivers one email rendered by the provider from templateID and params.
func (c *Client) Send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendPayload{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	// Provider replies with a short plain-text body ("OK" or an error description)
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SendError{
			Status:      resp.StatusCode,
			Text:        strings.TrimSpace(string(text)),
			ContentType: resp.Header.Get("Content-Type"),
		}
	}

	return nil
}

// IsConfigured checks if the client has the credentials needed to call the provider
func (c *Client) IsConfigured() bool {
	return c.serviceID != "" && c.publicKey != ""
}

// Package mailer sends transactional email through the external mail
// endpoint: a single HTTP endpoint accepting recipient, subject and a
// text or HTML body. Accept/decline/done transitions use it to notify
// owners; failures are reported to the caller and never retried here.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Mailer sends one email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// message is the wire format of the mail endpoint.
type message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    bool   `json:"html"`
}

// Client is an HTTP Mailer posting JSON messages to a configured endpoint.
type Client struct {
	endpoint   string
	sender     string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint URL and sender address.
func NewClient(endpoint, sender string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("mail endpoint URL cannot be empty")
	}
	if sender == "" {
		return nil, fmt.Errorf("mail sender address cannot be empty")
	}
	return &Client{
		endpoint: endpoint,
		sender:   sender,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts one message to the mail endpoint. The HTML flag is inferred
// from basic HTML tags in the body.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}

	lower := strings.ToLower(body)
	msg := message{
		To:      recipient,
		From:    c.sender,
		Subject: subject,
		Body:    body,
		HTML:    strings.Contains(lower, "<html>") || strings.Contains(lower, "<p>"),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode mail message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artifexgroup/artifex-site-backend/errs"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends transactional email through the Resend API.
type Mailer struct {
	apiKey string
	from   string
	to     string
	client *http.Client
}

// NewMailer creates a Resend-backed mailer. Returns nil when no API key is
// configured so the contact endpoint can report a dependent-system failure
// instead of panicking.
func NewMailer(apiKey, from, to string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		apiKey: apiKey,
		from:   from,
		to:     to,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one email. replyTo may be empty.
func (m *Mailer) Send(ctx context.Context, subject, htmlBody, replyTo string) error {
	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    htmlBody,
		ReplyTo: replyTo,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errs.NewEmailSendError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return errs.NewEmailSendError(err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewEmailSendError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		if json.Unmarshal(body, &resendErr) == nil && resendErr.Message != "" {
			return errs.NewEmailSendError(fmt.Errorf("resend returned %d: %s", resp.StatusCode, resendErr.Message))
		}
		return errs.NewEmailSendError(fmt.Errorf("resend returned %d", resp.StatusCode))
	}

	return nil
}

// SendContactNotification renders and delivers a contact-form submission.
func (m *Mailer) SendContactNotification(ctx context.Context, name, email, message string) error {
	subject := fmt.Sprintf("New Contact Form Message from %s", name)
	htmlBody := buildContactEmail(name, email, message)
	return m.Send(ctx, subject, htmlBody, email)
}

func buildContactEmail(name, email, message string) string {
	escapedMessage := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333; border-bottom: 2px solid #eee; padding-bottom: 10px;">
				New Contact Form Submission
			</h2>

			<div style="margin: 20px 0;">
				<h3 style="color: #555; margin-bottom: 5px;">Contact Details:</h3>
				<p style="margin: 5px 0;"><strong>Name:</strong> %s</p>
				<p style="margin: 5px 0;"><strong>Email:</strong> %s</p>
			</div>

			<div style="margin: 20px 0;">
				<h3 style="color: #555; margin-bottom: 10px;">Message:</h3>
				<div style="background: #f9f9f9; padding: 15px; border-radius: 5px; border-left: 4px solid #007bff;">
					%s
				</div>
			</div>

			<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; color: #888; font-size: 12px;">
				<p>This message was sent from your website contact form.</p>
				<p>Reply directly to this email to respond to %s.</p>
			</div>
		</div>
	`, html.EscapeString(name), html.EscapeString(email), escapedMessage, html.EscapeString(name))
}

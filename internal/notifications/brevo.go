package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"stefan-booking/internal/models"
)

const (
	DefaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"
	DefaultSenderEmail   = "noreply@stuhlstefan.de"
	DefaultSenderName    = "Stuhl Stefan"
	DefaultReplyTo       = "kontakt@stuhlstefan.de"
)

type BrevoOptions struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	ReplyTo     string
	Sandbox     bool
	Endpoint    string
	HTTPClient  *http.Client
}

type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	replyTo     string
	sandbox     bool
	endpoint    string
	httpClient  *http.Client
}

// NewBrevoClient returns nil when no API key is configured; dispatch is
// disabled in that case.
func NewBrevoClient(opts BrevoOptions) *BrevoClient {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil
	}
	c := &BrevoClient{
		apiKey:      opts.APIKey,
		senderEmail: opts.SenderEmail,
		senderName:  opts.SenderName,
		replyTo:     opts.ReplyTo,
		sandbox:     opts.Sandbox,
		endpoint:    opts.Endpoint,
		httpClient:  opts.HTTPClient,
	}
	if strings.TrimSpace(c.senderEmail) == "" {
		c.senderEmail = DefaultSenderEmail
	}
	if strings.TrimSpace(c.senderName) == "" {
		c.senderName = DefaultSenderName
	}
	if strings.TrimSpace(c.replyTo) == "" {
		c.replyTo = DefaultReplyTo
	}
	if strings.TrimSpace(c.endpoint) == "" {
		c.endpoint = DefaultBrevoEndpoint
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	return c
}

func (c *BrevoClient) SenderEmail() string {
	return c.senderEmail
}

func (c *BrevoClient) SendBookingConfirmation(ctx context.Context, booking models.Booking) (string, error) {
	// NewBrevoClient returns nil without an API key; a nil *BrevoClient stored
	// in a BookingMailer interface is not == nil, so the call still lands here.
	if c == nil {
		return "", dispatchErr("send", errors.New("brevo client is nil"))
	}
	htmlBody, err := RenderBookingConfirmation(booking)
	if err != nil {
		return "", dispatchErr("render", err)
	}
	return c.sendHTML(ctx, booking.Email, booking.Name, BookingConfirmationSubject(booking), htmlBody)
}

func (c *BrevoClient) sendHTML(ctx context.Context, toEmail, toName, subject, htmlBody string) (string, error) {
	if strings.TrimSpace(toEmail) == "" {
		return "", dispatchErr("send", errors.New("missing recipient email"))
	}

	payload := brevoSendRequest{
		Sender: brevoSender{
			Name:  c.senderName,
			Email: c.senderEmail,
		},
		To: []brevoRecipient{
			{
				Email: toEmail,
				Name:  toName,
			},
		},
		Subject:     subject,
		HtmlContent: htmlBody,
		ReplyTo:     &brevoRecipient{Email: c.replyTo},
	}
	if c.sandbox {
		payload.Headers = map[string]string{
			"X-Sib-Sandbox": "drop",
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", dispatchErr("marshal payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", dispatchErr("create request", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", dispatchErr("request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &DispatchError{
			Op:         "send",
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &DispatchError{Op: "decode response", StatusCode: resp.StatusCode, Err: err}
	}
	if strings.TrimSpace(out.MessageID) == "" {
		return "", &DispatchError{Op: "decode response", StatusCode: resp.StatusCode, Err: errors.New("missing messageId")}
	}
	return out.MessageID, nil
}

type brevoSendRequest struct {
	Sender      brevoSender       `json:"sender"`
	To          []brevoRecipient  `json:"to"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent,omitempty"`
	ReplyTo     *brevoRecipient   `json:"replyTo,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// EmailService sends templated transactional emails through the Resend
// HTTP API. Every send is best-effort: failures are logged and swallowed,
// and sends are skipped entirely when no API key is configured.
type EmailService struct {
	APIKey     string
	Endpoint   string
	From       string
	AppURL     string
	HTTPClient *http.Client
}

func NewEmailServiceFromEnv() *EmailService {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "https://btechconnect.vercel.app"
	}
	return &EmailService{
		APIKey:     os.Getenv("RESEND_API_KEY"),
		Endpoint:   "https://api.resend.com/emails",
		From:       "BTech Connect <noreply@btechconnect.com>",
		AppURL:     appURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (es *EmailService) canSendEmails() bool {
	return es.APIKey != ""
}

func (es *EmailService) send(ctx context.Context, to, subject, html string) {
	if !es.canSendEmails() {
		log.Println("Skipping email send: no API key available")
		return
	}

	payload := map[string]interface{}{
		"from":    es.From,
		"to":      to,
		"subject": subject,
		"html":    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling email payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, es.Endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Error building email request: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+es.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := es.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Email API returned status %d for %s", resp.StatusCode, to)
	}
}

// SendVerificationSuccessEmail notifies a user their account is verified
func (es *EmailService) SendVerificationSuccessEmail(ctx context.Context, email, name string) {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #3b82f6;">BTech Connect</h1>
		  <p>Hello %s,</p>
		  <p>Great news! Your BTech Connect account has been verified. You can now start connecting with other BTech students across India.</p>
		  <p>Here's what you can do now:</p>
		  <ul>
		    <li>Find peers from your college</li>
		    <li>Connect with students in your branch</li>
		    <li>Discover BTech students with similar interests</li>
		  </ul>
		  <a href="%s/dashboard" style="display: inline-block; background-color: #3b82f6; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; margin-top: 15px;">Go to Dashboard</a>
		  <p style="margin-top: 20px;">Happy connecting!</p>
		  <p>The BTech Connect Team</p>
		</div>
	`, name, es.AppURL)

	es.send(ctx, email, "Your BTech Connect Account is Verified", html)
}

// SendVerificationPendingEmail tells a user their account awaits manual review
func (es *EmailService) SendVerificationPendingEmail(ctx context.Context, email, name string) {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #3b82f6;">BTech Connect</h1>
		  <p>Hello %s,</p>
		  <p>Thank you for signing up for BTech Connect! We're currently verifying your account.</p>
		  <p>Our system automatically verifies academic email addresses. Since your email wasn't automatically verified, an administrator will review your account manually.</p>
		  <p>You'll receive another email once your account is verified.</p>
		  <p style="margin-top: 20px;">Thank you for your patience!</p>
		  <p>The BTech Connect Team</p>
		</div>
	`, name)

	es.send(ctx, email, "BTech Connect Account Verification Pending", html)
}

// SendVerificationRejectedEmail tells a user their account was not verified
func (es *EmailService) SendVerificationRejectedEmail(ctx context.Context, email, name string) {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #3b82f6;">BTech Connect</h1>
		  <p>Hello %s,</p>
		  <p>We've reviewed your BTech Connect account application, and we're unable to verify your account at this time.</p>
		  <p>BTech Connect is exclusively for BTech students in India. If you believe this is an error, please reply to this email with proof of your BTech student status.</p>
		  <p style="margin-top: 20px;">Thank you for your understanding.</p>
		  <p>The BTech Connect Team</p>
		</div>
	`, name)

	es.send(ctx, email, "BTech Connect Account Verification Status", html)
}

// Package mailer delivers the finished PDF report over authenticated
// SMTP. Delivery is best effort: missing configuration or a transport
// failure disables or fails the send without touching the report or the
// locally written PDF.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/wneessen/go-mail"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
)

// Environment variables read by LoadConfig.
const (
	EnvAddress  = "CYBER_TOOLKIT_EMAIL"
	EnvPassword = "CYBER_TOOLKIT_APP_PASSWORD"
	EnvHost     = "CYBER_TOOLKIT_SMTP_HOST"
	EnvPort     = "CYBER_TOOLKIT_SMTP_PORT"
)

const (
	defaultHost = "smtp.gmail.com"
	defaultPort = 587
	sendTimeout = 20 * time.Second

	// AttachmentName is the file name of the PDF attachment.
	AttachmentName = "cybersecurity_assessment_report.pdf"

	subject = "Your Cybersecurity Self-Assessment Report"
)

// ErrNotConfigured signals that email delivery is disabled because the
// credentials are absent. The message is shown to the user as-is.
var ErrNotConfigured = errors.New("email is not configured: set " + EnvAddress +
	" and " + EnvPassword + " in your .env file or environment")

// Config holds the mail-submission settings, parsed once at startup.
type Config struct {
	Address  string
	Password string
	Host     string
	Port     int
}

// LoadConfig reads SMTP settings from the environment. A .env file in
// the working directory is honoured when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Address:  os.Getenv(EnvAddress),
		Password: os.Getenv(EnvPassword),
		Host:     defaultHost,
		Port:     defaultPort,
	}
	if h := os.Getenv(EnvHost); h != "" {
		cfg.Host = h
	}
	if p := os.Getenv(EnvPort); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Enabled reports whether both credentials are present. When false, the
// send action is offered as disabled rather than attempted.
func (c Config) Enabled() bool {
	return c.Address != "" && c.Password != ""
}

// Send mails the report PDF to the recipient. One connection per call,
// bounded by a timeout and released on every path; a failure leaves the
// already-generated report untouched.
func Send(ctx context.Context, cfg Config, to string, r *report.Report, pdfBytes []byte) error {
	if !cfg.Enabled() {
		return ErrNotConfigured
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.Address); err != nil {
		return fmt.Errorf("mailer.Send: sender %q: %w", cfg.Address, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailer.Send: recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, HTMLBody(r))
	if err := msg.AttachReader(AttachmentName, bytes.NewReader(pdfBytes),
		mail.WithFileContentType("application/pdf")); err != nil {
		return fmt.Errorf("mailer.Send: attach report: %w", err)
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Address),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("mailer.Send: smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer.Send: %w", err)
	}
	return nil
}

// HTMLBody builds the HTML email body for a report.
func HTMLBody(r *report.Report) string {
	name := html.EscapeString(r.Participant.Name)
	business := html.EscapeString(r.Participant.Business)

	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; color: #222;">
    <h2>Cybersecurity Self-Assessment Report</h2>
    <p>Hi %s,</p>
    <p>
      Thank you for using our cybersecurity self-assessment toolkit for
      <strong>%s</strong>.
    </p>
    <p>Your overall results:</p>
    <ul>
      <li><strong>Security score:</strong> %.1f / 100</li>
      <li><strong>Risk level:</strong> %s</li>
      <li><strong>Internal risk points:</strong> %d out of %d</li>
    </ul>
    <p>
      Your full report is attached as a PDF. It includes a breakdown by security area
      and practical recommendations you can share with your team or IT provider.
    </p>
    <p>
      This report is a general guide only and is not legal or financial advice.
      For complex environments or high-risk industries, consider engaging a cybersecurity
      professional for a detailed assessment.
    </p>
    <p>Kind regards,<br/>Cybersecurity Self-Assessment Toolkit</p>
  </body>
</html>
`, name, business, r.Result.OverallScore, r.Result.RiskLevel,
		r.Result.RiskPoints, r.Result.MaxRiskPoints)
}

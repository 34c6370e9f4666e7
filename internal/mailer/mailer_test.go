package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAddress, EnvPassword, EnvHost, EnvPort} {
		t.Setenv(k, "")
	}
}

func sampleReport() *report.Report {
	return &report.Report{
		Tool:      report.ToolName,
		Version:   "1.0",
		ReportID:  "11111111-2222-3333-4444-555555555555",
		Generated: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Participant: report.Participant{
			Name:     "Jane & Co",
			Business: "ABC <Cleaning>",
			Email:    "jane@example.com",
		},
		Result: scoring.Result{
			OverallScore:  62.5,
			RiskPoints:    9,
			MaxRiskPoints: 24,
			RiskLevel:     scoring.RiskMedium,
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadConfig()

	if cfg.Enabled() {
		t.Error("expected email to be disabled without credentials")
	}
	if cfg.Host != "smtp.gmail.com" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Port != 587 {
		t.Errorf("Port = %d", cfg.Port)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddress, "toolkit@example.com")
	t.Setenv(EnvPassword, "app-password")
	t.Setenv(EnvHost, "mail.example.com")
	t.Setenv(EnvPort, "2525")

	cfg := LoadConfig()
	if !cfg.Enabled() {
		t.Error("expected email to be enabled")
	}
	if cfg.Host != "mail.example.com" || cfg.Port != 2525 {
		t.Errorf("Host/Port = %q/%d", cfg.Host, cfg.Port)
	}
}

func TestLoadConfigBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "not-a-number")

	if cfg := LoadConfig(); cfg.Port != 587 {
		t.Errorf("Port = %d, want default 587", cfg.Port)
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"both set", Config{Address: "a@b.c", Password: "p"}, true},
		{"missing password", Config{Address: "a@b.c"}, false},
		{"missing address", Config{Password: "p"}, false},
		{"neither", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	err := Send(context.Background(), Config{}, "jane@example.com", sampleReport(), []byte("%PDF-"))
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestHTMLBody(t *testing.T) {
	body := HTMLBody(sampleReport())

	for _, want := range []string{
		"Jane &amp; Co",
		"ABC &lt;Cleaning&gt;",
		"62.5 / 100",
		"MEDIUM",
		"9 out of 24",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "ABC <Cleaning>") {
		t.Error("participant input was not HTML-escaped")
	}
}

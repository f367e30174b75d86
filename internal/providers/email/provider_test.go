package email

import (
	"strings"
	"testing"
	"time"

	"github.com/jvrel/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewFromConfigFallsBackToNoOp(t *testing.T) {
	cfg := config.Config{
		SMTP: config.SMTPConfig{
			Host: "smtp.example.com",
			Port: 587,
			// no credentials, no recipient
		},
	}

	provider := NewFromConfig(cfg)
	assert.False(t, provider.Enabled())
	assert.IsType(t, &NoOpProvider{}, provider)
}

func TestNewFromConfigBuildsSMTPWhenComplete(t *testing.T) {
	cfg := config.Config{
		SMTP: config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     465,
			Secure:   true,
			Username: "mailer@example.com",
			Password: "hunter2",
			To:       "owner@example.com",
			Timeout:  5 * time.Second,
		},
	}

	provider := NewFromConfig(cfg)
	assert.True(t, provider.Enabled())
	assert.IsType(t, &SMTPProvider{}, provider)
}

func TestNewSMTPDefaultsFromToUsername(t *testing.T) {
	p := NewSMTP(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer@example.com",
		Password: "hunter2",
		To:       "owner@example.com",
	})

	assert.Equal(t, "mailer@example.com", p.cfg.From)
	assert.Equal(t, 10*time.Second, p.cfg.Timeout)
}

func TestMessageFormat(t *testing.T) {
	p := NewSMTP(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer@example.com",
		Password: "hunter2",
		From:     "no-reply@example.com",
		To:       "owner@example.com",
	})

	msg := string(p.message("New contact", "hello body"))

	assert.True(t, strings.HasPrefix(msg, "From: no-reply@example.com\r\n"))
	assert.Contains(t, msg, "To: owner@example.com\r\n")
	assert.Contains(t, msg, "Subject: New contact\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain")
	assert.True(t, strings.HasSuffix(msg, "\r\nhello body"))
}

func TestNoOpProviderSendsNothing(t *testing.T) {
	p := &NoOpProvider{}
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Send(t.Context(), "subject", "body"))
}

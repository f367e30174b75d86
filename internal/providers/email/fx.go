package email

import (
	"github.com/jvrel/portfolio/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.email",
	fx.Provide(NewFromConfig),
)

// NewFromConfig returns an SMTP provider when the notification config is
// complete, otherwise the no-op provider so the pipeline skips notification.
func NewFromConfig(cfg config.Config) Provider {
	if !cfg.SMTP.Complete() {
		return &NoOpProvider{}
	}
	return NewSMTP(Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Secure:   cfg.SMTP.Secure,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
		Timeout:  cfg.SMTP.Timeout,
	})
}

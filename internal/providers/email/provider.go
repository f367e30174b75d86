package email

import "context"

type Provider interface {
	// Enabled reports whether the transport is fully configured. Callers
	// skip notification silently when it is not.
	Enabled() bool

	Send(ctx context.Context, subject, textBody string) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Enabled() bool {
	return false
}

func (p *NoOpProvider) Send(ctx context.Context, subject, textBody string) error {
	return nil
}

// Package mailer delivers transactional mail through an ordered list of
// transport strategies; the first one that succeeds wins.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"konasal-backend/pkg/config"
)

// Mailer sends one message. Implementations must respect ctx cancellation.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Name() string
}

// Chain tries each strategy in order until one delivers.
type Chain struct {
	strategies []Mailer
}

func NewChain(strategies ...Mailer) *Chain {
	return &Chain{strategies: strategies}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Send(ctx context.Context, to, subject, htmlBody string) error {
	var errs []error
	for _, m := range c.strategies {
		err := m.Send(ctx, to, subject, htmlBody)
		if err == nil {
			return nil
		}
		log.Printf("[WARN] mailer %s failed, trying next: %v", m.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", m.Name(), err))
	}
	if len(errs) == 0 {
		return errors.New("no mail transport configured")
	}
	return errors.Join(errs...)
}

// FromConfig assembles the delivery chain: SendGrid if a key is set, SMTP if
// a host is set, and the log sink last so a token always reaches an
// operator-visible channel even with no working transport.
func FromConfig(cfg *config.Config) *Chain {
	var strategies []Mailer
	if cfg.SendGridAPIKey != "" {
		strategies = append(strategies, NewSendGrid(cfg.SendGridAPIKey, cfg.EmailFrom))
	}
	if cfg.SMTPHost != "" {
		strategies = append(strategies, NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom))
	}
	strategies = append(strategies, NewLogSink())
	return NewChain(strategies...)
}

// Package email contains the confirmation-email collaborator. The demo
// deployment only simulates delivery; a real SMTP or provider client would
// implement the same Send signature.
package email

import (
	"context"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// Sender logs the confirmation instead of delivering it.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, c model.Confirmation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logx.Info().
		Str("to", c.To).
		Str("subject", c.Subject).
		Msg("simulated confirmation email sent")
	return nil
}

var _ model.ConfirmationSender = (*Sender)(nil)

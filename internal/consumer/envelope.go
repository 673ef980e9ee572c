package consumer

import (
	"context"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// Envelope wraps a run request with acknowledgment callbacks
type Envelope struct {
	Run  *domain.RunRequest
	ack  func(context.Context) error
	nack func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(run *domain.RunRequest, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Run:  run,
		ack:  ack,
		nack: nack,
	}
}

// Ack acknowledges successful processing
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack negatively acknowledges processing
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}

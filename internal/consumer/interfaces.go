package consumer

import (
	"context"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into run requests
type MessageParser interface {
	Parse(body []byte) (*domain.RunRequest, error)
}

// RunClaimer defines the idempotency guard consulted before executing a run
type RunClaimer interface {
	Claim(ctx context.Context, runID string) (bool, error)
	Release(ctx context.Context, runID string)
}

// PipelineRunner defines the interface for executing a full attribution run
type PipelineRunner interface {
	Execute(ctx context.Context, run domain.RunRequest) (*domain.RunReport, error)
}

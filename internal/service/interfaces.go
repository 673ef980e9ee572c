package service

import (
	"context"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/dto"
)

// RunServicer defines the interface for attribution run operations exposed to
// the HTTP layer
type RunServicer interface {
	TriggerRun(ctx context.Context, req *dto.TriggerRunRequest) (*dto.TriggerRunResponse, error)
	GetResults(ctx context.Context, req *dto.GetResultsRequest) (*dto.GetResultsResponse, error)
	GetChannelWeights(ctx context.Context) (*dto.GetChannelWeightsResponse, error)
	GetScores(ctx context.Context, req *dto.GetScoresRequest) (*dto.GetScoresResponse, error)
}

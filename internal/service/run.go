package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/dto"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/metrics"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/queue"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/repository"
)

// RunService exposes attribution runs and their stored outputs to the API
type RunService struct {
	publisher  queue.RunPublisher
	repository repository.AttributionRepository
	log        *zap.Logger
}

// NewRunService creates a new run service
func NewRunService(publisher queue.RunPublisher, repo repository.AttributionRepository, log *zap.Logger) *RunService {
	return &RunService{
		publisher:  publisher,
		repository: repo,
		log:        log,
	}
}

// TriggerRun validates the model, assigns a run ID and publishes the request
// to the run queue. The run itself executes asynchronously in the worker.
func (s *RunService) TriggerRun(ctx context.Context, req *dto.TriggerRunRequest) (*dto.TriggerRunResponse, error) {
	model, err := domain.ParseModel(req.Model)
	if err != nil {
		s.log.Warn("Rejected run request with unknown model",
			zap.String("model", req.Model))
		return nil, err
	}

	run := domain.RunRequest{
		RunID:       uuid.NewString(),
		Model:       string(model),
		RequestedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to publish run request: %w", err)
	}

	metrics.RunsTriggered.WithLabelValues(run.Model).Inc()

	return &dto.TriggerRunResponse{
		RunID:  run.RunID,
		Model:  run.Model,
		Status: "accepted",
	}, nil
}

// GetResults retrieves stored attribution results for a model
func (s *RunService) GetResults(ctx context.Context, req *dto.GetResultsRequest) (*dto.GetResultsResponse, error) {
	model, err := domain.ParseModel(req.Model)
	if err != nil {
		return nil, err
	}

	results, err := s.repository.GetAttributionResults(ctx, repository.ResultsQuery{
		Model: string(model),
		Limit: req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get attribution results: %w", err)
	}

	response := &dto.GetResultsResponse{
		Model:   string(model),
		Count:   len(results),
		Results: make([]dto.AttributionResultData, 0, len(results)),
	}
	for _, res := range results {
		response.Results = append(response.Results, dto.AttributionResultData{
			TouchpointID: res.TouchpointID,
			CustomerID:   res.CustomerID,
			ConversionID: res.ConversionID,
			Credit:       res.Credit,
			ComputedAt:   res.ComputedAt,
		})
	}

	return response, nil
}

// GetChannelWeights retrieves the latest Markov channel weight table
func (s *RunService) GetChannelWeights(ctx context.Context) (*dto.GetChannelWeightsResponse, error) {
	weights, err := s.repository.GetChannelWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel weights: %w", err)
	}

	response := &dto.GetChannelWeightsResponse{
		Count:   len(weights),
		Weights: make([]dto.ChannelWeightData, 0, len(weights)),
	}
	for _, w := range weights {
		response.Weights = append(response.Weights, dto.ChannelWeightData{
			Channel:             w.Channel,
			BaselineProbability: w.BaselineProbability,
			RemovalEffect:       w.RemovalEffect,
			Weight:              w.Weight,
		})
	}

	return response, nil
}

// GetScores retrieves stored influencer scores, optionally filtered by
// performance segment
func (s *RunService) GetScores(ctx context.Context, req *dto.GetScoresRequest) (*dto.GetScoresResponse, error) {
	if req.Segment != "" {
		switch req.Segment {
		case domain.SegmentHigh, domain.SegmentMedium, domain.SegmentLow:
		default:
			return nil, fmt.Errorf("invalid segment: %q (supported: %s, %s, %s)",
				req.Segment, domain.SegmentHigh, domain.SegmentMedium, domain.SegmentLow)
		}
	}

	scores, err := s.repository.GetScores(ctx, repository.ScoresQuery{
		Segment: req.Segment,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	response := &dto.GetScoresResponse{
		Segment: req.Segment,
		Count:   len(scores),
		Scores:  make([]dto.InfluencerScoreData, 0, len(scores)),
	}
	for _, sc := range scores {
		response.Scores = append(response.Scores, dto.InfluencerScoreData{
			InfluencerID:      sc.InfluencerID,
			Username:          sc.Username,
			Platform:          sc.Platform,
			Tier:              sc.Tier,
			EngagementQuality: sc.EngagementQuality,
			Authenticity:      sc.Authenticity,
			ConversionRate:    sc.ConversionRate,
			CostEfficiency:    sc.CostEfficiency,
			BrandAlignment:    sc.BrandAlignment,
			Composite:         sc.Composite,
			Segment:           sc.Segment,
			TotalPosts:        sc.TotalPosts,
			SponsoredPosts:    sc.SponsoredPosts,
			Conversions:       sc.Conversions,
			AttributedRevenue: sc.AttributedRevenue,
			ComputedAt:        sc.ComputedAt,
		})
	}

	return response, nil
}

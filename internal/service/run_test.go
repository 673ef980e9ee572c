package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/dto"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/repository"
)

// MockRunPublisher is a mock implementation of queue.RunPublisher
type MockRunPublisher struct {
	mock.Mock
}

func (m *MockRunPublisher) PublishRun(ctx context.Context, run domain.RunRequest) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func TestRunService_TriggerRun_PublishesRequest(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	publisher.On("PublishRun", mock.Anything, mock.MatchedBy(func(run domain.RunRequest) bool {
		return run.RunID != "" && run.Model == "time_decay" && !run.RequestedAt.IsZero()
	})).Return(nil)

	resp, err := svc.TriggerRun(context.Background(), &dto.TriggerRunRequest{Model: "time_decay"})

	assert.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, "time_decay", resp.Model)
	assert.NotEmpty(t, resp.RunID)
	publisher.AssertExpectations(t)
}

func TestRunService_TriggerRun_UnknownModel(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	_, err := svc.TriggerRun(context.Background(), &dto.TriggerRunRequest{Model: "w_shaped"})

	assert.Error(t, err)
	publisher.AssertNotCalled(t, "PublishRun", mock.Anything, mock.Anything)
}

func TestRunService_TriggerRun_PublishFailure(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	publisher.On("PublishRun", mock.Anything, mock.Anything).
		Return(errors.New("queue unavailable"))

	_, err := svc.TriggerRun(context.Background(), &dto.TriggerRunRequest{Model: "linear"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish run request")
}

func TestRunService_GetResults_MapsRows(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	computedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo.On("GetAttributionResults", mock.Anything, repository.ResultsQuery{Model: "linear", Limit: 10}).
		Return([]domain.AttributionResult{
			{TouchpointID: "tp-1", CustomerID: "cust-1", ConversionID: "conv-1", Model: "linear", Credit: 50, ComputedAt: computedAt},
		}, nil)

	resp, err := svc.GetResults(context.Background(), &dto.GetResultsRequest{Model: "linear", Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "tp-1", resp.Results[0].TouchpointID)
	assert.Equal(t, 50.0, resp.Results[0].Credit)
}

func TestRunService_GetResults_UnknownModel(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	_, err := svc.GetResults(context.Background(), &dto.GetResultsRequest{Model: "bogus"})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "GetAttributionResults", mock.Anything, mock.Anything)
}

func TestRunService_GetScores_InvalidSegment(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	_, err := svc.GetScores(context.Background(), &dto.GetScoresRequest{Segment: "Elite"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid segment")
}

func TestRunService_GetScores_FiltersBySegment(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	repo.On("GetScores", mock.Anything, repository.ScoresQuery{Segment: "High", Limit: 5}).
		Return([]domain.Score{
			{InfluencerID: "inf-1", Segment: domain.SegmentHigh, Composite: 82.5},
		}, nil)

	resp, err := svc.GetScores(context.Background(), &dto.GetScoresRequest{Segment: "High", Limit: 5})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "High", resp.Scores[0].Segment)
	repo.AssertExpectations(t)
}

func TestRunService_GetChannelWeights_MapsRows(t *testing.T) {
	publisher := new(MockRunPublisher)
	repo := new(MockAttributionRepository)
	svc := NewRunService(publisher, repo, zap.NewNop())

	repo.On("GetChannelWeights", mock.Anything).
		Return([]domain.ChannelWeight{
			{Channel: "Instagram:click", BaselineProbability: 0.3, RemovalEffect: 0.6, Weight: 0.4},
			{Channel: "TikTok:view", BaselineProbability: 0.3, RemovalEffect: 0.9, Weight: 0.6},
		}, nil)

	resp, err := svc.GetChannelWeights(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Instagram:click", resp.Weights[0].Channel)
	assert.Equal(t, 0.4, resp.Weights[0].Weight)
}

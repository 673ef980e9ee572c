package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/dto"
)

// MockRunService is a mock implementation of service.RunServicer
type MockRunService struct {
	mock.Mock
}

func (m *MockRunService) TriggerRun(ctx context.Context, req *dto.TriggerRunRequest) (*dto.TriggerRunResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TriggerRunResponse), args.Error(1)
}

func (m *MockRunService) GetResults(ctx context.Context, req *dto.GetResultsRequest) (*dto.GetResultsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetResultsResponse), args.Error(1)
}

func (m *MockRunService) GetChannelWeights(ctx context.Context) (*dto.GetChannelWeightsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetChannelWeightsResponse), args.Error(1)
}

func (m *MockRunService) GetScores(ctx context.Context, req *dto.GetScoresRequest) (*dto.GetScoresResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetScoresResponse), args.Error(1)
}

func TestHandler_HealthCheck(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_TriggerRun_Success(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	runReq := dto.TriggerRunRequest{Model: "markov_chain"}
	mockService.On("TriggerRun", mock.Anything, &runReq).Return(&dto.TriggerRunResponse{
		RunID:  "run-abc",
		Model:  "markov_chain",
		Status: "accepted",
	}, nil)

	body, _ := json.Marshal(runReq)
	req := httptest.NewRequest(http.MethodPost, "/attribution/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var response dto.TriggerRunResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "run-abc", response.RunID)
	assert.Equal(t, "accepted", response.Status)
	mockService.AssertExpectations(t)
}

func TestHandler_TriggerRun_MissingModel(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	req := httptest.NewRequest(http.MethodPost, "/attribution/runs", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockService.AssertNotCalled(t, "TriggerRun", mock.Anything, mock.Anything)
}

func TestHandler_TriggerRun_UnknownModel(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	body := []byte(`{"model":"u_shaped"}`)
	req := httptest.NewRequest(http.MethodPost, "/attribution/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "TriggerRun", mock.Anything, mock.Anything)
}

func TestHandler_TriggerRun_ServiceError(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	mockService.On("TriggerRun", mock.Anything, mock.Anything).
		Return(nil, errors.New("queue unavailable"))

	body := []byte(`{"model":"linear"}`)
	req := httptest.NewRequest(http.MethodPost, "/attribution/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
}

func TestHandler_GetResults_Success(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	mockService.On("GetResults", mock.Anything, mock.MatchedBy(func(req *dto.GetResultsRequest) bool {
		return req.Model == "linear" && req.Limit == 50
	})).Return(&dto.GetResultsResponse{
		Model: "linear",
		Count: 1,
		Results: []dto.AttributionResultData{
			{TouchpointID: "tp-1", Credit: 50},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/attribution/results?model=linear&limit=50", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GetResultsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "tp-1", response.Results[0].TouchpointID)
	mockService.AssertExpectations(t)
}

func TestHandler_GetResults_MissingModel(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	req := httptest.NewRequest(http.MethodGet, "/attribution/results", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetResults", mock.Anything, mock.Anything)
}

func TestHandler_GetChannelWeights_Success(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	mockService.On("GetChannelWeights", mock.Anything).Return(&dto.GetChannelWeightsResponse{
		Count: 1,
		Weights: []dto.ChannelWeightData{
			{Channel: "Instagram:click", Weight: 1},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/attribution/channel-weights", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GetChannelWeightsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Instagram:click", response.Weights[0].Channel)
}

func TestHandler_GetScores_InvalidSegment(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	req := httptest.NewRequest(http.MethodGet, "/influencers/scores?segment=Elite", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetScores", mock.Anything, mock.Anything)
}

func TestHandler_GetScores_Success(t *testing.T) {
	mockService := new(MockRunService)
	log := zap.NewNop()

	handler := NewHandler(mockService, log)

	mockService.On("GetScores", mock.Anything, mock.MatchedBy(func(req *dto.GetScoresRequest) bool {
		return req.Segment == "High"
	})).Return(&dto.GetScoresResponse{
		Segment: "High",
		Count:   1,
		Scores: []dto.InfluencerScoreData{
			{InfluencerID: "inf-1", Composite: 82.5, Segment: "High"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/influencers/scores?segment=High", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GetScoresResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "inf-1", response.Scores[0].InfluencerID)
	mockService.AssertExpectations(t)
}

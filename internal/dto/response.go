package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"model is required"`
}

// TriggerRunResponse represents an accepted attribution run
type TriggerRunResponse struct {
	RunID  string `json:"run_id" example:"9f3c2a1e-6d4b-4f8a-9c0d-5e7b8a1f2c3d"`
	Model  string `json:"model" example:"markov_chain"`
	Status string `json:"status" example:"accepted"`
}

// AttributionResultData represents a single touchpoint credit
type AttributionResultData struct {
	TouchpointID string    `json:"touchpoint_id" example:"tp_00123"`
	CustomerID   string    `json:"customer_id" example:"cust_042"`
	ConversionID string    `json:"conversion_id" example:"conv_007"`
	Credit       float64   `json:"credit" example:"57.14"`
	ComputedAt   time.Time `json:"computed_at"`
}

// GetResultsResponse represents the attribution results query response
type GetResultsResponse struct {
	Model   string                  `json:"model" example:"linear"`
	Count   int                     `json:"count" example:"100"`
	Results []AttributionResultData `json:"results"`
}

// ChannelWeightData represents one channel's Markov removal effect
type ChannelWeightData struct {
	Channel             string  `json:"channel" example:"Instagram:click"`
	BaselineProbability float64 `json:"baseline_probability" example:"0.31"`
	RemovalEffect       float64 `json:"removal_effect" example:"0.42"`
	Weight              float64 `json:"weight" example:"0.27"`
}

// GetChannelWeightsResponse represents the channel weights query response
type GetChannelWeightsResponse struct {
	Count   int                 `json:"count" example:"12"`
	Weights []ChannelWeightData `json:"weights"`
}

// InfluencerScoreData represents one influencer's score card
type InfluencerScoreData struct {
	InfluencerID      string    `json:"influencer_id" example:"inf_021"`
	Username          string    `json:"username" example:"style_by_mara"`
	Platform          string    `json:"platform" example:"Instagram"`
	Tier              string    `json:"tier" example:"micro"`
	EngagementQuality float64   `json:"engagement_quality_score" example:"81.2"`
	Authenticity      float64   `json:"authenticity_score" example:"87"`
	ConversionRate    float64   `json:"conversion_score" example:"64.5"`
	CostEfficiency    float64   `json:"cost_efficiency_score" example:"72.3"`
	BrandAlignment    float64   `json:"brand_alignment_score" example:"85"`
	Composite         float64   `json:"composite_score" example:"76.41"`
	Segment           string    `json:"performance_segment" example:"High"`
	TotalPosts        int64     `json:"total_posts" example:"34"`
	SponsoredPosts    int64     `json:"sponsored_posts" example:"12"`
	Conversions       int64     `json:"conversions" example:"9"`
	AttributedRevenue float64   `json:"attributed_revenue" example:"4310.55"`
	ComputedAt        time.Time `json:"computed_at"`
}

// GetScoresResponse represents the influencer scores query response
type GetScoresResponse struct {
	Segment string                `json:"segment,omitempty" example:"High"`
	Count   int                   `json:"count" example:"25"`
	Scores  []InfluencerScoreData `json:"scores"`
}

package dto

// TriggerRunRequest represents a request to start an attribution run
type TriggerRunRequest struct {
	Model string `json:"model" binding:"required" example:"markov_chain"`
}

// GetResultsRequest represents an attribution results query
type GetResultsRequest struct {
	Model string `form:"model" binding:"required" example:"linear"`
	Limit int    `form:"limit" example:"100"`
}

// GetScoresRequest represents an influencer scores query
type GetScoresRequest struct {
	Segment string `form:"segment" example:"High"`
	Limit   int    `form:"limit" example:"100"`
}

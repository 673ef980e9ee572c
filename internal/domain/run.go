package domain

import "time"

// RunRequest is the message published to the run queue when an attribution
// run is triggered. RunID doubles as the idempotency key.
type RunRequest struct {
	RunID       string    `json:"run_id"`
	Model       string    `json:"model"`
	RequestedAt time.Time `json:"requested_at"`
}

// RunReport summarizes a completed attribution run.
type RunReport struct {
	RunID              string
	Model              Model
	JourneysBuilt      int
	ConvertingJourneys int
	ResultsWritten     int
	WeightsWritten     int
	ScoresWritten      int
	SkippedJourneys    int
	Converged          bool
	Duration           time.Duration
}

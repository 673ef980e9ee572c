package repository

import (
	"context"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// ResultsQuery filters the attribution results table.
type ResultsQuery struct {
	Model string
	Limit int
}

// ScoresQuery filters the influencer score table.
type ScoresQuery struct {
	Segment string
	Limit   int
}

// AttributionRepository defines the storage operations for the attribution
// pipeline: loading the input snapshots and persisting the three output
// tables.
type AttributionRepository interface {
	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// LoadTouchpoints loads the full touchpoints table
	LoadTouchpoints(ctx context.Context) ([]domain.Touchpoint, error)

	// LoadConversions loads the full conversions table
	LoadConversions(ctx context.Context) ([]domain.Conversion, error)

	// LoadInfluencers loads the full influencers table
	LoadInfluencers(ctx context.Context) ([]domain.Influencer, error)

	// LoadPosts loads the full posts table
	LoadPosts(ctx context.Context) ([]domain.Post, error)

	// InsertAttributionResults persists attribution results in batches
	InsertAttributionResults(ctx context.Context, results []domain.AttributionResult) (int, error)

	// InsertChannelWeights persists the channel removal-effect table
	InsertChannelWeights(ctx context.Context, weights []domain.ChannelWeight) (int, error)

	// InsertScores persists the influencer score table
	InsertScores(ctx context.Context, scores []domain.Score) (int, error)

	// GetAttributionResults retrieves stored attribution results
	GetAttributionResults(ctx context.Context, query ResultsQuery) ([]domain.AttributionResult, error)

	// GetChannelWeights retrieves the latest channel removal-effect table
	GetChannelWeights(ctx context.Context) ([]domain.ChannelWeight, error)

	// GetScores retrieves stored influencer scores
	GetScores(ctx context.Context, query ScoresQuery) ([]domain.Score, error)

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

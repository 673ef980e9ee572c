package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/repository"
)

const defaultQueryLimit = 1000

// Repository implements AttributionRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the input and output tables if they do not exist. Input
// tables are populated by the external loader; the three output tables are
// owned by this service.
func (r *Repository) InitSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS touchpoints (
			touchpoint_id String,
			customer_id String,
			post_id String,
			touchpoint_type LowCardinality(String),
			platform LowCardinality(String),
			touchpoint_date DateTime,
			contributed_to_conversion Bool,
			conversion_id String,
			attribution_weight Float64
		) ENGINE = MergeTree()
		ORDER BY (customer_id, touchpoint_date)
		PARTITION BY toYYYYMM(touchpoint_date)`,

		`CREATE TABLE IF NOT EXISTS conversions (
			conversion_id String,
			customer_id String,
			post_id String,
			influencer_id String,
			brand_id String,
			conversion_date DateTime,
			attribution_type LowCardinality(String),
			order_value Float64,
			product_category LowCardinality(String),
			customer_journey_length Int32,
			touchpoints_count Int32
		) ENGINE = MergeTree()
		ORDER BY (conversion_id)
		PARTITION BY toYYYYMM(conversion_date)`,

		`CREATE TABLE IF NOT EXISTS influencers (
			influencer_id String,
			username String,
			platform LowCardinality(String),
			tier LowCardinality(String),
			follower_count Int64,
			engagement_rate Float64,
			audience_authenticity_score Float64,
			avg_collaboration_cost Float64,
			content_category LowCardinality(String)
		) ENGINE = MergeTree()
		ORDER BY (influencer_id)`,

		`CREATE TABLE IF NOT EXISTS posts (
			post_id String,
			influencer_id String,
			brand_id String,
			platform LowCardinality(String),
			is_sponsored Bool,
			likes Int64,
			comments Int64,
			shares Int64,
			saves Int64,
			reach Int64
		) ENGINE = MergeTree()
		ORDER BY (post_id)`,

		`CREATE TABLE IF NOT EXISTS attribution_results (
			touchpoint_id String,
			customer_id String,
			conversion_id String,
			model LowCardinality(String),
			credit Float64,
			computed_at DateTime64(3)
		) ENGINE = ReplacingMergeTree(computed_at)
		ORDER BY (model, touchpoint_id, conversion_id)`,

		`CREATE TABLE IF NOT EXISTS channel_weights (
			channel LowCardinality(String),
			baseline_probability Float64,
			removal_effect Float64,
			weight Float64,
			computed_at DateTime64(3) DEFAULT now64(3)
		) ENGINE = ReplacingMergeTree(computed_at)
		ORDER BY (channel)`,

		`CREATE TABLE IF NOT EXISTS influencer_scores (
			influencer_id String,
			username String,
			platform LowCardinality(String),
			tier LowCardinality(String),
			engagement_quality_score Float64,
			authenticity_score Float64,
			conversion_score Float64,
			cost_efficiency_score Float64,
			brand_alignment_score Float64,
			composite_score Float64,
			performance_segment LowCardinality(String),
			total_posts Int64,
			sponsored_posts Int64,
			conversions Int64,
			attributed_revenue Float64,
			computed_at DateTime64(3)
		) ENGINE = ReplacingMergeTree(computed_at)
		ORDER BY (influencer_id)`,
	}

	for _, query := range queries {
		if err := r.client.Conn().Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// LoadTouchpoints loads the full touchpoints table ordered by customer and
// timestamp so journey building is deterministic.
func (r *Repository) LoadTouchpoints(ctx context.Context) ([]domain.Touchpoint, error) {
	query := `
		SELECT touchpoint_id, customer_id, post_id, touchpoint_type, platform,
		       touchpoint_date, contributed_to_conversion, conversion_id, attribution_weight
		FROM touchpoints
		ORDER BY customer_id, touchpoint_date
	`

	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query touchpoints: %w", err)
	}
	defer r.closeRows(rows, "touchpoints")

	var touchpoints []domain.Touchpoint
	for rows.Next() {
		var tp domain.Touchpoint
		if err := rows.Scan(&tp.TouchpointID, &tp.CustomerID, &tp.PostID, &tp.Type, &tp.Platform,
			&tp.Timestamp, &tp.ContributedToConversion, &tp.ConversionID, &tp.AttributionWeight); err != nil {
			return nil, fmt.Errorf("failed to scan touchpoint row: %w", err)
		}
		touchpoints = append(touchpoints, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating touchpoint rows: %w", err)
	}

	return touchpoints, nil
}

// LoadConversions loads the full conversions table
func (r *Repository) LoadConversions(ctx context.Context) ([]domain.Conversion, error) {
	query := `
		SELECT conversion_id, customer_id, post_id, influencer_id, brand_id,
		       conversion_date, attribution_type, order_value, product_category,
		       customer_journey_length, touchpoints_count
		FROM conversions
		ORDER BY conversion_id
	`

	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer r.closeRows(rows, "conversions")

	var conversions []domain.Conversion
	for rows.Next() {
		var conv domain.Conversion
		var journeyLength, touchpointsCount int32
		if err := rows.Scan(&conv.ConversionID, &conv.CustomerID, &conv.PostID, &conv.InfluencerID,
			&conv.BrandID, &conv.ConversionDate, &conv.AttributionType, &conv.OrderValue,
			&conv.ProductCategory, &journeyLength, &touchpointsCount); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		conv.JourneyLengthDays = int(journeyLength)
		conv.TouchpointsCount = int(touchpointsCount)
		conversions = append(conversions, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversion rows: %w", err)
	}

	return conversions, nil
}

// LoadInfluencers loads the full influencers table
func (r *Repository) LoadInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	query := `
		SELECT influencer_id, username, platform, tier, follower_count,
		       engagement_rate, audience_authenticity_score, avg_collaboration_cost, content_category
		FROM influencers
		ORDER BY influencer_id
	`

	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query influencers: %w", err)
	}
	defer r.closeRows(rows, "influencers")

	var influencers []domain.Influencer
	for rows.Next() {
		var inf domain.Influencer
		if err := rows.Scan(&inf.InfluencerID, &inf.Username, &inf.Platform, &inf.Tier, &inf.FollowerCount,
			&inf.EngagementRate, &inf.AuthenticityScore, &inf.CostPerPost, &inf.ContentCategory); err != nil {
			return nil, fmt.Errorf("failed to scan influencer row: %w", err)
		}
		influencers = append(influencers, inf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating influencer rows: %w", err)
	}

	return influencers, nil
}

// LoadPosts loads the full posts table
func (r *Repository) LoadPosts(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT post_id, influencer_id, brand_id, platform, is_sponsored,
		       likes, comments, shares, saves, reach
		FROM posts
		ORDER BY post_id
	`

	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer r.closeRows(rows, "posts")

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.PostID, &p.InfluencerID, &p.BrandID, &p.Platform, &p.IsSponsored,
			&p.Likes, &p.Comments, &p.Shares, &p.Saves, &p.Reach); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// InsertAttributionResults persists attribution results in a single batch
func (r *Repository) InsertAttributionResults(ctx context.Context, results []domain.AttributionResult) (int, error) {
	if len(results) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO attribution_results")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare attribution results batch: %w", err)
	}

	for _, res := range results {
		if err := batch.Append(
			res.TouchpointID,
			res.CustomerID,
			res.ConversionID,
			res.Model,
			res.Credit,
			res.ComputedAt,
		); err != nil {
			return 0, fmt.Errorf("failed to append attribution result to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send attribution results batch: %w", err)
	}

	return len(results), nil
}

// InsertChannelWeights persists the channel removal-effect table
func (r *Repository) InsertChannelWeights(ctx context.Context, weights []domain.ChannelWeight) (int, error) {
	if len(weights) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO channel_weights (channel, baseline_probability, removal_effect, weight)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare channel weights batch: %w", err)
	}

	for _, w := range weights {
		if err := batch.Append(w.Channel, w.BaselineProbability, w.RemovalEffect, w.Weight); err != nil {
			return 0, fmt.Errorf("failed to append channel weight to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send channel weights batch: %w", err)
	}

	return len(weights), nil
}

// InsertScores persists the influencer score table
func (r *Repository) InsertScores(ctx context.Context, scores []domain.Score) (int, error) {
	if len(scores) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO influencer_scores")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare scores batch: %w", err)
	}

	for _, s := range scores {
		if err := batch.Append(
			s.InfluencerID,
			s.Username,
			s.Platform,
			s.Tier,
			s.EngagementQuality,
			s.Authenticity,
			s.ConversionRate,
			s.CostEfficiency,
			s.BrandAlignment,
			s.Composite,
			s.Segment,
			s.TotalPosts,
			s.SponsoredPosts,
			s.Conversions,
			s.AttributedRevenue,
			s.ComputedAt,
		); err != nil {
			return 0, fmt.Errorf("failed to append score to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send scores batch: %w", err)
	}

	return len(scores), nil
}

// GetAttributionResults retrieves stored attribution results for a model
func (r *Repository) GetAttributionResults(ctx context.Context, query repository.ResultsQuery) ([]domain.AttributionResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	stmt := `
		SELECT touchpoint_id, customer_id, conversion_id, model, credit, computed_at
		FROM attribution_results FINAL
		WHERE model = ?
		ORDER BY credit DESC
		LIMIT ?
	`

	rows, err := r.client.Conn().Query(ctx, stmt, query.Model, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attribution results: %w", err)
	}
	defer r.closeRows(rows, "attribution_results")

	var results []domain.AttributionResult
	for rows.Next() {
		var res domain.AttributionResult
		if err := rows.Scan(&res.TouchpointID, &res.CustomerID, &res.ConversionID,
			&res.Model, &res.Credit, &res.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attribution result row: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attribution result rows: %w", err)
	}

	return results, nil
}

// GetChannelWeights retrieves the latest channel removal-effect table
func (r *Repository) GetChannelWeights(ctx context.Context) ([]domain.ChannelWeight, error) {
	stmt := `
		SELECT channel, baseline_probability, removal_effect, weight
		FROM channel_weights FINAL
		ORDER BY weight DESC
	`

	rows, err := r.client.Conn().Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel weights: %w", err)
	}
	defer r.closeRows(rows, "channel_weights")

	var weights []domain.ChannelWeight
	for rows.Next() {
		var w domain.ChannelWeight
		if err := rows.Scan(&w.Channel, &w.BaselineProbability, &w.RemovalEffect, &w.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan channel weight row: %w", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel weight rows: %w", err)
	}

	return weights, nil
}

// GetScores retrieves stored influencer scores, optionally filtered by
// performance segment
func (r *Repository) GetScores(ctx context.Context, query repository.ScoresQuery) ([]domain.Score, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	stmt := `
		SELECT influencer_id, username, platform, tier,
		       engagement_quality_score, authenticity_score, conversion_score,
		       cost_efficiency_score, brand_alignment_score, composite_score,
		       performance_segment, total_posts, sponsored_posts, conversions,
		       attributed_revenue, computed_at
		FROM influencer_scores FINAL
	`
	args := []interface{}{}
	if query.Segment != "" {
		stmt += " WHERE performance_segment = ?"
		args = append(args, query.Segment)
	}
	stmt += " ORDER BY composite_score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.client.Conn().Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer r.closeRows(rows, "influencer_scores")

	var scores []domain.Score
	for rows.Next() {
		var s domain.Score
		if err := rows.Scan(&s.InfluencerID, &s.Username, &s.Platform, &s.Tier,
			&s.EngagementQuality, &s.Authenticity, &s.ConversionRate,
			&s.CostEfficiency, &s.BrandAlignment, &s.Composite,
			&s.Segment, &s.TotalPosts, &s.SponsoredPosts, &s.Conversions,
			&s.AttributedRevenue, &s.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score rows: %w", err)
	}

	return scores, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) closeRows(rows driver.Rows, table string) {
	if err := rows.Close(); err != nil {
		r.log.Error("Failed to close rows",
			zap.String("table", table),
			zap.Error(err))
	}
}

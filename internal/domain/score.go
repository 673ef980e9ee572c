package domain

import "time"

// Performance segments derived from the composite score.
const (
	SegmentHigh   = "High"
	SegmentMedium = "Medium"
	SegmentLow    = "Low"
)

// Score is one row of the influencer score table: five 0-100 sub-scores, the
// weighted composite, and the performance segment. Scores are recomputed in
// full on every run.
type Score struct {
	InfluencerID       string    `ch:"influencer_id"`
	Username           string    `ch:"username"`
	Platform           string    `ch:"platform"`
	Tier               string    `ch:"tier"`
	EngagementQuality  float64   `ch:"engagement_quality_score"`
	Authenticity       float64   `ch:"authenticity_score"`
	ConversionRate     float64   `ch:"conversion_score"`
	CostEfficiency     float64   `ch:"cost_efficiency_score"`
	BrandAlignment     float64   `ch:"brand_alignment_score"`
	Composite          float64   `ch:"composite_score"`
	Segment            string    `ch:"performance_segment"`
	TotalPosts         int64     `ch:"total_posts"`
	SponsoredPosts     int64     `ch:"sponsored_posts"`
	Conversions        int64     `ch:"conversions"`
	AttributedRevenue  float64   `ch:"attributed_revenue"`
	ComputedAt         time.Time `ch:"computed_at"`
}

package domain

// Influencer tiers by follower-count bucket.
const (
	TierNano  = "nano"
	TierMicro = "micro"
	TierMid   = "mid"
	TierMacro = "macro"
	TierMega  = "mega"
)

// Influencer represents a creator profile loaded from the influencers table.
type Influencer struct {
	InfluencerID      string  `ch:"influencer_id"`
	Username          string  `ch:"username"`
	Platform          string  `ch:"platform"`
	Tier              string  `ch:"tier"`
	FollowerCount     int64   `ch:"follower_count"`
	EngagementRate    float64 `ch:"engagement_rate"`
	AuthenticityScore float64 `ch:"audience_authenticity_score"`
	CostPerPost       float64 `ch:"avg_collaboration_cost"`
	ContentCategory   string  `ch:"content_category"`
}

// TierForFollowers maps a follower count to its tier bucket. The stored tier
// column must always agree with this function.
func TierForFollowers(followers int64) string {
	switch {
	case followers >= 1_000_000:
		return TierMega
	case followers >= 500_000:
		return TierMacro
	case followers >= 100_000:
		return TierMid
	case followers >= 10_000:
		return TierMicro
	default:
		return TierNano
	}
}

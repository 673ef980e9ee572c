package scoring

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// DefaultAlignmentScores is the stock brand-alignment map by content
// category. Callers may supply their own; categories not present fall back
// to the configured default.
func DefaultAlignmentScores() map[string]float64 {
	return map[string]float64{
		"Luxury Fashion":      95,
		"Streetwear":          85,
		"Sustainable Fashion": 90,
		"Fast Fashion":        80,
		"Accessories":         85,
		"Footwear":            82,
		"Activewear":          78,
		"Vintage/Thrift":      88,
	}
}

// Engine computes influencer composite scores. It is the sole writer of
// Score records; all sub-scores are recomputed in full on every run.
type Engine struct {
	cfg       config.Scoring
	alignment map[string]float64
	log       *zap.Logger
}

// NewEngine creates a new scoring engine
func NewEngine(cfg config.Scoring, alignment map[string]float64, log *zap.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		alignment: alignment,
		log:       log,
	}
}

// aggregate carries the per-influencer joins the sub-scores are built from.
type aggregate struct {
	totalPosts     int64
	sponsoredPosts int64
	conversions    int64
	revenue        float64

	conversionRate float64
	inverseCost    float64
}

// Score computes the full score table from immutable input snapshots,
// ordered by influencer identifier.
func (e *Engine) Score(influencers []domain.Influencer, posts []domain.Post, conversions []domain.Conversion) []domain.Score {
	aggs := e.aggregates(influencers, posts, conversions)

	// Reference populations: engagement within tier, the rest across all
	// influencers. Tiers are derived from the follower count rather than the
	// stored column, so a stale label cannot move an influencer into the
	// wrong reference group.
	engagementByTier := make(map[string][]float64)
	conversionRates := make([]float64, 0, len(influencers))
	inverseCosts := make([]float64, 0, len(influencers))
	for _, inf := range influencers {
		tier := e.tierOf(inf)
		engagementByTier[tier] = append(engagementByTier[tier], inf.EngagementRate)
		agg := aggs[inf.InfluencerID]
		conversionRates = append(conversionRates, agg.conversionRate)
		inverseCosts = append(inverseCosts, agg.inverseCost)
	}

	tierRankings := make(map[string]*Ranking, len(engagementByTier))
	for tier, rates := range engagementByTier {
		tierRankings[tier] = NewRanking(rates)
	}
	conversionRanking := NewRanking(conversionRates)
	costRanking := NewRanking(inverseCosts)

	now := time.Now()
	scores := make([]domain.Score, 0, len(influencers))
	for _, inf := range influencers {
		agg := aggs[inf.InfluencerID]
		tier := e.tierOf(inf)

		s := domain.Score{
			InfluencerID:      inf.InfluencerID,
			Username:          inf.Username,
			Platform:          inf.Platform,
			Tier:              tier,
			EngagementQuality: tierRankings[tier].Percentile(inf.EngagementRate),
			Authenticity:      clamp(inf.AuthenticityScore*100, 0, 100),
			ConversionRate:    conversionRanking.Percentile(agg.conversionRate),
			CostEfficiency:    costRanking.Percentile(agg.inverseCost),
			BrandAlignment:    e.alignmentScore(inf.ContentCategory),
			TotalPosts:        agg.totalPosts,
			SponsoredPosts:    agg.sponsoredPosts,
			Conversions:       agg.conversions,
			AttributedRevenue: agg.revenue,
			ComputedAt:        now,
		}

		s.Composite = e.cfg.EngagementWeight*s.EngagementQuality +
			e.cfg.AuthenticityWeight*s.Authenticity +
			e.cfg.ConversionWeight*s.ConversionRate +
			e.cfg.CostEfficiencyWeight*s.CostEfficiency +
			e.cfg.BrandAlignmentWeight*s.BrandAlignment
		s.Segment = e.segment(s.Composite)

		scores = append(scores, s)
	}

	sort.Slice(scores, func(i, k int) bool {
		return scores[i].InfluencerID < scores[k].InfluencerID
	})
	return scores
}

func (e *Engine) aggregates(influencers []domain.Influencer, posts []domain.Post, conversions []domain.Conversion) map[string]*aggregate {
	aggs := make(map[string]*aggregate, len(influencers))
	for _, inf := range influencers {
		aggs[inf.InfluencerID] = &aggregate{}
	}

	for _, p := range posts {
		agg, ok := aggs[p.InfluencerID]
		if !ok {
			continue
		}
		agg.totalPosts++
		if p.IsSponsored {
			agg.sponsoredPosts++
		}
	}

	for _, conv := range conversions {
		if conv.InfluencerID == "" {
			continue
		}
		agg, ok := aggs[conv.InfluencerID]
		if !ok {
			e.log.Warn("Conversion references unknown influencer",
				zap.String("conversion_id", conv.ConversionID),
				zap.String("influencer_id", conv.InfluencerID))
			continue
		}
		agg.conversions++
		agg.revenue += conv.OrderValue
	}

	for _, inf := range influencers {
		agg := aggs[inf.InfluencerID]
		if agg.sponsoredPosts > 0 {
			agg.conversionRate = float64(agg.conversions) / float64(agg.sponsoredPosts)
		}
		if agg.conversions > 0 {
			totalCost := inf.CostPerPost * float64(agg.sponsoredPosts)
			if totalCost > 0 {
				// Cheaper per conversion ranks higher.
				agg.inverseCost = float64(agg.conversions) / totalCost
			} else {
				agg.inverseCost = math.Inf(1)
			}
		}
	}

	return aggs
}

// tierOf derives the influencer's tier from the follower count and warns
// when the stored label disagrees.
func (e *Engine) tierOf(inf domain.Influencer) string {
	tier := domain.TierForFollowers(inf.FollowerCount)
	if inf.Tier != "" && inf.Tier != tier {
		e.log.Warn("Stored tier disagrees with follower count",
			zap.String("influencer_id", inf.InfluencerID),
			zap.String("stored_tier", inf.Tier),
			zap.String("derived_tier", tier),
			zap.Int64("follower_count", inf.FollowerCount))
	}
	return tier
}

func (e *Engine) alignmentScore(category string) float64 {
	if score, ok := e.alignment[category]; ok {
		return score
	}
	return e.cfg.DefaultAlignment
}

// segment classifies a composite score; boundaries are inclusive lower
// bounds, so a composite of exactly HighThreshold is High.
func (e *Engine) segment(composite float64) string {
	switch {
	case composite >= e.cfg.HighThreshold:
		return domain.SegmentHigh
	case composite >= e.cfg.MediumThreshold:
		return domain.SegmentMedium
	default:
		return domain.SegmentLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

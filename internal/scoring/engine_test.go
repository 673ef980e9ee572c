package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

func testScoringConfig() config.Scoring {
	return config.Scoring{
		EngagementWeight:     0.25,
		AuthenticityWeight:   0.25,
		ConversionWeight:     0.30,
		CostEfficiencyWeight: 0.15,
		BrandAlignmentWeight: 0.05,
		HighThreshold:        70,
		MediumThreshold:      40,
		DefaultAlignment:     75,
	}
}

func testScoringEngine() *Engine {
	return NewEngine(testScoringConfig(), DefaultAlignmentScores(), zap.NewNop())
}

var followersByTier = map[string]int64{
	domain.TierNano:  5_000,
	domain.TierMicro: 50_000,
	domain.TierMid:   250_000,
	domain.TierMacro: 750_000,
	domain.TierMega:  2_000_000,
}

func influencer(id, tier string, engagement, authenticity, cost float64) domain.Influencer {
	return domain.Influencer{
		InfluencerID:      id,
		Username:          "creator_" + id,
		Platform:          "Instagram",
		Tier:              tier,
		FollowerCount:     followersByTier[tier],
		EngagementRate:    engagement,
		AuthenticityScore: authenticity,
		CostPerPost:       cost,
		ContentCategory:   "Streetwear",
	}
}

func TestRanking_Percentile_TiesShareAPercentile(t *testing.T) {
	r := NewRanking([]float64{1, 2, 2, 3})

	assert.Equal(t, r.Percentile(2), r.Percentile(2))
	assert.InDelta(t, 75.0, r.Percentile(2), 1e-9)
	assert.InDelta(t, 25.0, r.Percentile(1), 1e-9)
	assert.InDelta(t, 100.0, r.Percentile(3), 1e-9)
}

func TestRanking_Percentile_LoneMemberScoresOneHundred(t *testing.T) {
	r := NewRanking([]float64{4.2})

	assert.Equal(t, 100.0, r.Percentile(4.2))
}

func TestEngine_Score_IdenticalInfluencersScoreIdentically(t *testing.T) {
	engine := testScoringEngine()
	influencers := []domain.Influencer{
		influencer("inf1", domain.TierNano, 5.0, 0.9, 100),
		influencer("inf2", domain.TierNano, 5.0, 0.9, 100),
		influencer("inf3", domain.TierNano, 5.0, 0.9, 100),
	}

	scores := engine.Score(influencers, nil, nil)

	require.Len(t, scores, 3)
	for _, s := range scores[1:] {
		assert.Equal(t, scores[0].Composite, s.Composite)
		assert.Equal(t, scores[0].Segment, s.Segment)
	}
}

func TestEngine_Score_LoneInfluencerPercentilesAreOneHundred(t *testing.T) {
	engine := testScoringEngine()
	influencers := []domain.Influencer{
		influencer("inf1", domain.TierNano, 5.0, 0.9, 100),
	}

	scores := engine.Score(influencers, nil, nil)

	require.Len(t, scores, 1)
	assert.Equal(t, 100.0, scores[0].EngagementQuality)
	assert.Equal(t, 100.0, scores[0].ConversionRate)
	assert.Equal(t, 100.0, scores[0].CostEfficiency)
}

func TestEngine_Score_EngagementPercentileIsWithinTier(t *testing.T) {
	engine := testScoringEngine()
	// A nano engagement rate of 4.0 is weak among nanos but would dominate
	// the mega group; tier grouping must keep them apart.
	influencers := []domain.Influencer{
		influencer("nano1", domain.TierNano, 4.0, 0.9, 100),
		influencer("nano2", domain.TierNano, 6.0, 0.9, 100),
		influencer("nano3", domain.TierNano, 8.0, 0.9, 100),
		influencer("mega1", domain.TierMega, 1.0, 0.7, 20000),
	}

	scores := engine.Score(influencers, nil, nil)

	byID := make(map[string]domain.Score)
	for _, s := range scores {
		byID[s.InfluencerID] = s
	}
	assert.InDelta(t, 100.0/3, byID["nano1"].EngagementQuality, 1e-9)
	assert.Equal(t, 100.0, byID["nano3"].EngagementQuality)
	assert.Equal(t, 100.0, byID["mega1"].EngagementQuality)
}

func TestEngine_Score_TierDerivedFromFollowerCount(t *testing.T) {
	engine := testScoringEngine()
	// A stale tier column must not move an influencer into the wrong
	// reference group: 5000 followers is nano regardless of the label.
	mislabeled := influencer("small", domain.TierNano, 1.0, 0.9, 100)
	mislabeled.Tier = domain.TierMega
	influencers := []domain.Influencer{
		mislabeled,
		influencer("nano1", domain.TierNano, 6.0, 0.9, 100),
		influencer("nano2", domain.TierNano, 8.0, 0.9, 100),
	}

	scores := engine.Score(influencers, nil, nil)

	byID := make(map[string]domain.Score)
	for _, s := range scores {
		byID[s.InfluencerID] = s
	}
	assert.Equal(t, domain.TierNano, byID["small"].Tier)
	assert.InDelta(t, 100.0/3, byID["small"].EngagementQuality, 1e-9)
	assert.Equal(t, 100.0, byID["nano2"].EngagementQuality)
}

func TestEngine_Score_ConversionAndCostSubScores(t *testing.T) {
	engine := testScoringEngine()
	influencers := []domain.Influencer{
		influencer("cheap", domain.TierNano, 5.0, 0.9, 50),
		influencer("pricey", domain.TierNano, 5.0, 0.9, 5000),
		influencer("idle", domain.TierNano, 5.0, 0.9, 100),
	}
	posts := []domain.Post{
		{PostID: "p1", InfluencerID: "cheap", IsSponsored: true},
		{PostID: "p2", InfluencerID: "pricey", IsSponsored: true},
		{PostID: "p3", InfluencerID: "idle", IsSponsored: false},
	}
	conversions := []domain.Conversion{
		{ConversionID: "c1", InfluencerID: "cheap", OrderValue: 120},
		{ConversionID: "c2", InfluencerID: "pricey", OrderValue: 300},
	}

	scores := engine.Score(influencers, posts, conversions)

	byID := make(map[string]domain.Score)
	for _, s := range scores {
		byID[s.InfluencerID] = s
	}

	// Both converters share the top conversion-rate percentile; the idle
	// influencer sits below them.
	assert.Equal(t, byID["cheap"].ConversionRate, byID["pricey"].ConversionRate)
	assert.Less(t, byID["idle"].ConversionRate, byID["cheap"].ConversionRate)

	// One conversion for $50 beats one conversion for $5000.
	assert.Greater(t, byID["cheap"].CostEfficiency, byID["pricey"].CostEfficiency)
	assert.Less(t, byID["idle"].CostEfficiency, byID["pricey"].CostEfficiency)

	assert.Equal(t, int64(1), byID["cheap"].Conversions)
	assert.Equal(t, 120.0, byID["cheap"].AttributedRevenue)
	assert.Equal(t, int64(1), byID["idle"].TotalPosts)
	assert.Equal(t, int64(0), byID["idle"].SponsoredPosts)
}

func TestEngine_Score_SegmentBoundariesAreInclusive(t *testing.T) {
	engine := testScoringEngine()

	assert.Equal(t, domain.SegmentHigh, engine.segment(70.0))
	assert.Equal(t, domain.SegmentMedium, engine.segment(69.99))
	assert.Equal(t, domain.SegmentMedium, engine.segment(40.0))
	assert.Equal(t, domain.SegmentLow, engine.segment(39.99))
}

func TestEngine_Score_BrandAlignmentFallsBackToDefault(t *testing.T) {
	engine := testScoringEngine()
	inf := influencer("inf1", domain.TierNano, 5.0, 0.9, 100)
	inf.ContentCategory = "Home Decor"

	scores := engine.Score([]domain.Influencer{inf}, nil, nil)

	require.Len(t, scores, 1)
	assert.Equal(t, 75.0, scores[0].BrandAlignment)
}

func TestEngine_Score_AuthenticityScaledAndClamped(t *testing.T) {
	engine := testScoringEngine()
	inf := influencer("inf1", domain.TierNano, 5.0, 0.87, 100)

	scores := engine.Score([]domain.Influencer{inf}, nil, nil)

	assert.InDelta(t, 87.0, scores[0].Authenticity, 1e-9)
}

func TestTierForFollowers_BucketBoundaries(t *testing.T) {
	assert.Equal(t, domain.TierNano, domain.TierForFollowers(9_999))
	assert.Equal(t, domain.TierMicro, domain.TierForFollowers(10_000))
	assert.Equal(t, domain.TierMicro, domain.TierForFollowers(99_999))
	assert.Equal(t, domain.TierMid, domain.TierForFollowers(100_000))
	assert.Equal(t, domain.TierMacro, domain.TierForFollowers(500_000))
	assert.Equal(t, domain.TierMega, domain.TierForFollowers(1_000_000))
}

package domain

// Post holds the subset of the posts table needed for scoring joins.
type Post struct {
	PostID       string `ch:"post_id"`
	InfluencerID string `ch:"influencer_id"`
	BrandID      string `ch:"brand_id"`
	Platform     string `ch:"platform"`
	IsSponsored  bool   `ch:"is_sponsored"`
	Likes        int64  `ch:"likes"`
	Comments     int64  `ch:"comments"`
	Shares       int64  `ch:"shares"`
	Saves        int64  `ch:"saves"`
	Reach        int64  `ch:"reach"`
}

package domain

import "time"

// Conversion represents a completed purchase. A conversion with an empty
// PostID/InfluencerID is organic and carries no influencer attribution.
// Conversions are immutable once loaded.
type Conversion struct {
	ConversionID      string    `ch:"conversion_id"`
	CustomerID        string    `ch:"customer_id"`
	PostID            string    `ch:"post_id"`
	InfluencerID      string    `ch:"influencer_id"`
	BrandID           string    `ch:"brand_id"`
	ConversionDate    time.Time `ch:"conversion_date"`
	AttributionType   string    `ch:"attribution_type"`
	OrderValue        float64   `ch:"order_value"`
	ProductCategory   string    `ch:"product_category"`
	JourneyLengthDays int       `ch:"customer_journey_length"`
	TouchpointsCount  int       `ch:"touchpoints_count"`
}

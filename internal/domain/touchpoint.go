package domain

import "time"

// Touchpoint types as they appear in the touchpoints table.
const (
	TouchpointView         = "view"
	TouchpointClick        = "click"
	TouchpointSave         = "save"
	TouchpointLike         = "like"
	TouchpointComment      = "comment"
	TouchpointWebsiteVisit = "website_visit"
	TouchpointAddToCart    = "add_to_cart"
)

// Touchpoint represents a single customer interaction stored in ClickHouse.
// Empty PostID or ConversionID means the touchpoint has no such association.
type Touchpoint struct {
	TouchpointID            string    `ch:"touchpoint_id"`
	CustomerID              string    `ch:"customer_id"`
	PostID                  string    `ch:"post_id"`
	Type                    string    `ch:"touchpoint_type"`
	Platform                string    `ch:"platform"`
	Timestamp               time.Time `ch:"touchpoint_date"`
	ContributedToConversion bool      `ch:"contributed_to_conversion"`
	ConversionID            string    `ch:"conversion_id"`
	AttributionWeight       float64   `ch:"attribution_weight"`
}

// Channel returns the Markov channel state for the touchpoint, a
// platform/type pair such as "Instagram:click".
func (t Touchpoint) Channel() string {
	return t.Platform + ":" + t.Type
}

package journey

import (
	"fmt"
	"sort"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// Builder reconstructs ordered per-customer journeys from the raw touchpoint
// and conversion tables.
type Builder struct{}

// NewBuilder creates a new journey builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build groups touchpoints by customer, sorts each group by timestamp
// ascending (insertion order breaks ties), and attaches the customer's
// conversion as the terminal element. Customers without a conversion produce
// a non-terminal journey. Records with no customer ID cannot be grouped; they
// are excluded from the output and reported in the returned integrity slice.
// Output is deterministic for identical input ordering.
func (b *Builder) Build(touchpoints []domain.Touchpoint, conversions []domain.Conversion) (map[string]domain.Journey, []*attribution.DataIntegrityError) {
	journeys := make(map[string]domain.Journey)
	var integrity []*attribution.DataIntegrityError

	for _, tp := range touchpoints {
		if tp.CustomerID == "" {
			integrity = append(integrity, &attribution.DataIntegrityError{
				ConversionID: tp.ConversionID,
				Reason:       fmt.Sprintf("touchpoint %s has no customer ID", tp.TouchpointID),
			})
			continue
		}
		j := journeys[tp.CustomerID]
		j.CustomerID = tp.CustomerID
		j.Touchpoints = append(j.Touchpoints, tp)
		journeys[tp.CustomerID] = j
	}

	for customerID, j := range journeys {
		tps := j.Touchpoints
		sort.SliceStable(tps, func(i, k int) bool {
			return tps[i].Timestamp.Before(tps[k].Timestamp)
		})
		j.Touchpoints = tps
		journeys[customerID] = j
	}

	for i := range conversions {
		conv := conversions[i]
		if conv.CustomerID == "" {
			integrity = append(integrity, &attribution.DataIntegrityError{
				ConversionID: conv.ConversionID,
				Reason:       "conversion has no customer ID",
			})
			continue
		}
		j, ok := journeys[conv.CustomerID]
		if !ok {
			// A conversion with no observed touchpoints still owns a journey;
			// the attribution engine reports it as a data-integrity error.
			j = domain.Journey{CustomerID: conv.CustomerID}
		}
		j.Conversion = &conv
		journeys[conv.CustomerID] = j
	}

	return journeys, integrity
}

// Converting returns only the journeys that end in a conversion, the subset
// eligible for attribution.
func Converting(journeys map[string]domain.Journey) []domain.Journey {
	out := make([]domain.Journey, 0, len(journeys))
	for _, j := range journeys {
		if j.Converted() {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return out[i].CustomerID < out[k].CustomerID
	})
	return out
}

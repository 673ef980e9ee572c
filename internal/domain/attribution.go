package domain

import (
	"fmt"
	"time"
)

// Model selects an attribution credit-assignment strategy.
type Model string

const (
	ModelFirstTouch    Model = "first_touch"
	ModelLastTouch     Model = "last_touch"
	ModelLinear        Model = "linear"
	ModelTimeDecay     Model = "time_decay"
	ModelPositionBased Model = "position_based"
	ModelMarkovChain   Model = "markov_chain"
)

// Models lists every supported attribution model.
var Models = []Model{
	ModelFirstTouch,
	ModelLastTouch,
	ModelLinear,
	ModelTimeDecay,
	ModelPositionBased,
	ModelMarkovChain,
}

// ParseModel validates a model selector. An unrecognized selector is a
// configuration error and must abort before any computation.
func ParseModel(s string) (Model, error) {
	for _, m := range Models {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown attribution model: %q", s)
}

// Journey is the ordered touchpoint sequence for one customer, terminated by
// at most one conversion. It is derived by the journey builder and never
// stored.
type Journey struct {
	CustomerID  string
	Touchpoints []Touchpoint
	Conversion  *Conversion
}

// Converted reports whether the journey ends in a conversion.
func (j Journey) Converted() bool {
	return j.Conversion != nil
}

// AttributionResult is one row of the attribution results table: the credit a
// single touchpoint earned under a single model.
type AttributionResult struct {
	TouchpointID string    `ch:"touchpoint_id"`
	CustomerID   string    `ch:"customer_id"`
	ConversionID string    `ch:"conversion_id"`
	Model        string    `ch:"model"`
	Credit       float64   `ch:"credit"`
	ComputedAt   time.Time `ch:"computed_at"`
}

// ChannelWeight is one row of the channel removal-effect table.
type ChannelWeight struct {
	Channel             string  `ch:"channel"`
	BaselineProbability float64 `ch:"baseline_probability"`
	RemovalEffect       float64 `ch:"removal_effect"`
	Weight              float64 `ch:"weight"`
}

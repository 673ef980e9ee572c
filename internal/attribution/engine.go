package attribution

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

const hoursPerDay = 24

// Engine assigns conversion credit across a journey's touchpoints under a
// selected model. It is the sole writer of attribution credit; inputs are
// never mutated.
type Engine struct {
	cfg config.Attribution
	log *zap.Logger
}

// NewEngine creates a new attribution engine
func NewEngine(cfg config.Attribution, log *zap.Logger) *Engine {
	return &Engine{
		cfg: cfg,
		log: log,
	}
}

// Assign produces one credit per non-conversion touchpoint. Credits are in
// [0, order_value] and sum exactly to the conversion's order value (cent
// rounding, remainder on the final touchpoint).
func (e *Engine) Assign(j domain.Journey, model domain.Model) ([]domain.AttributionResult, error) {
	if !j.Converted() {
		return nil, fmt.Errorf("journey for customer %s has no conversion to attribute", j.CustomerID)
	}
	if model == domain.ModelMarkovChain {
		return nil, errors.New("markov_chain is a cross-journey model; use the markov calculator over the full journey set")
	}

	if len(j.Touchpoints) == 0 {
		return nil, &DataIntegrityError{
			CustomerID:   j.CustomerID,
			ConversionID: j.Conversion.ConversionID,
			Reason:       "conversion has no preceding touchpoints",
		}
	}
	if j.Conversion.OrderValue < 0 {
		return nil, &DataIntegrityError{
			CustomerID:   j.CustomerID,
			ConversionID: j.Conversion.ConversionID,
			Reason:       fmt.Sprintf("negative order value %v", j.Conversion.OrderValue),
		}
	}

	var credits []float64
	switch model {
	case domain.ModelFirstTouch:
		credits = e.firstTouch(j)
	case domain.ModelLastTouch:
		credits = e.lastTouch(j)
	case domain.ModelLinear:
		credits = e.linear(j)
	case domain.ModelTimeDecay:
		credits = e.timeDecay(j)
	case domain.ModelPositionBased:
		credits = e.positionBased(j)
	default:
		return nil, fmt.Errorf("unknown attribution model: %q", model)
	}

	credits = settle(credits, j.Conversion.OrderValue, remainderIndex(model, len(credits)))

	now := time.Now()
	results := make([]domain.AttributionResult, len(j.Touchpoints))
	for i, tp := range j.Touchpoints {
		results[i] = domain.AttributionResult{
			TouchpointID: tp.TouchpointID,
			CustomerID:   j.CustomerID,
			ConversionID: j.Conversion.ConversionID,
			Model:        string(model),
			Credit:       credits[i],
			ComputedAt:   now,
		}
	}
	return results, nil
}

// AssignAll runs Assign over every converting journey. Data-integrity errors
// are collected per record; any other error aborts.
func (e *Engine) AssignAll(journeys []domain.Journey, model domain.Model) ([]domain.AttributionResult, []*DataIntegrityError, error) {
	var results []domain.AttributionResult
	var integrity []*DataIntegrityError

	for _, j := range journeys {
		assigned, err := e.Assign(j, model)
		if err != nil {
			var dataErr *DataIntegrityError
			if errors.As(err, &dataErr) {
				e.log.Warn("Skipping record with integrity error",
					zap.String("customer_id", dataErr.CustomerID),
					zap.String("conversion_id", dataErr.ConversionID),
					zap.String("reason", dataErr.Reason))
				integrity = append(integrity, dataErr)
				continue
			}
			return nil, nil, err
		}
		results = append(results, assigned...)
	}

	return results, integrity, nil
}

func (e *Engine) firstTouch(j domain.Journey) []float64 {
	credits := make([]float64, len(j.Touchpoints))
	credits[0] = j.Conversion.OrderValue
	return credits
}

func (e *Engine) lastTouch(j domain.Journey) []float64 {
	credits := make([]float64, len(j.Touchpoints))
	credits[len(credits)-1] = j.Conversion.OrderValue
	return credits
}

func (e *Engine) linear(j domain.Journey) []float64 {
	n := len(j.Touchpoints)
	credits := make([]float64, n)
	share := j.Conversion.OrderValue / float64(n)
	for i := range credits {
		credits[i] = share
	}
	return credits
}

// timeDecay weights each touchpoint by 2^(-age/halfLife), where age is the
// distance in days from the touchpoint to the conversion.
func (e *Engine) timeDecay(j domain.Journey) []float64 {
	n := len(j.Touchpoints)
	weights := make([]float64, n)
	var sum float64
	for i, tp := range j.Touchpoints {
		ageDays := j.Conversion.ConversionDate.Sub(tp.Timestamp).Hours() / hoursPerDay
		if ageDays < 0 {
			ageDays = 0
		}
		w := math.Exp2(-ageDays / e.cfg.HalfLifeDays)
		weights[i] = w
		sum += w
	}

	credits := make([]float64, n)
	if sum == 0 {
		// All weights underflowed; fall back to an even split.
		return e.linear(j)
	}
	for i, w := range weights {
		credits[i] = j.Conversion.OrderValue * w / sum
	}
	return credits
}

func (e *Engine) positionBased(j domain.Journey) []float64 {
	n := len(j.Touchpoints)
	v := j.Conversion.OrderValue
	credits := make([]float64, n)

	switch n {
	case 1:
		credits[0] = v
	case 2:
		// No interior bucket; endpoints split evenly.
		credits[0] = v / 2
		credits[1] = v / 2
	default:
		credits[0] = v * e.cfg.PositionFirstWeight
		credits[n-1] = v * e.cfg.PositionLastWeight
		interior := v * (1 - e.cfg.PositionFirstWeight - e.cfg.PositionLastWeight) / float64(n-2)
		for i := 1; i < n-1; i++ {
			credits[i] = interior
		}
	}
	return credits
}

// remainderIndex picks the touchpoint that absorbs the cent-rounding
// remainder. Position-based endpoints carry fixed percentage shares that must
// stay exact, so there the remainder lands on the final interior touchpoint;
// every other model settles on the last one.
func remainderIndex(model domain.Model, n int) int {
	if model == domain.ModelPositionBased && n >= 3 {
		return n - 2
	}
	return n - 1
}

// settle rounds credits to cents and pins their sum to total by assigning the
// rounding remainder to the element at remainder.
func settle(credits []float64, total float64, remainder int) []float64 {
	n := len(credits)
	if n == 0 {
		return credits
	}

	settled := make([]float64, n)
	var sum float64
	for i := range credits {
		if i == remainder {
			continue
		}
		settled[i] = roundCents(credits[i])
		sum += settled[i]
	}
	settled[remainder] = roundCents(total - sum)
	return settled
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

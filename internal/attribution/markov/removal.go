package markov

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/attribution"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// ErrNotConverged reports that the absorption-probability solve exhausted its
// iteration budget. The accompanying result is the best available
// approximation and must be treated as such, never as exact.
var ErrNotConverged = errors.New("absorption-probability solve did not converge")

// Calculator computes channel removal effects over a transition chain and
// distributes conversion value by the resulting weights.
type Calculator struct {
	cfg config.Attribution
	log *zap.Logger
}

// NewCalculator creates a new removal-effect calculator
func NewCalculator(cfg config.Attribution, log *zap.Logger) *Calculator {
	return &Calculator{
		cfg: cfg,
		log: log,
	}
}

// ConversionProbability solves for the probability of reaching the
// conversion state from start. If removed is non-empty, that channel's
// absorption probability is forced to zero, which is equivalent to
// redirecting its edges to the null state.
func (c *Calculator) ConversionProbability(chain *Chain, removed string) (float64, error) {
	channels := chain.Channels()

	probs := make(map[string]float64, len(channels)+1)
	next := make(map[string]float64, len(channels)+1)

	states := append([]string{StateStart}, channels...)

	for iter := 0; iter < c.cfg.MarkovMaxIterations; iter++ {
		var maxDelta float64
		for _, state := range states {
			if state == removed {
				next[state] = 0
				continue
			}
			var p float64
			p += chain.Probability(state, StateConversion)
			for _, to := range channels {
				if to == removed {
					continue
				}
				if pt := chain.Probability(state, to); pt > 0 {
					p += pt * probs[to]
				}
			}
			next[state] = p
			if delta := math.Abs(p - probs[state]); delta > maxDelta {
				maxDelta = delta
			}
		}
		probs, next = next, probs

		if maxDelta < c.cfg.MarkovTolerance {
			return probs[StateStart], nil
		}
	}

	return probs[StateStart], fmt.Errorf("%w after %d iterations (tolerance %v)", ErrNotConverged, c.cfg.MarkovMaxIterations, c.cfg.MarkovTolerance)
}

// RemovalEffects computes the removal effect and normalized weight for every
// channel in the universe. Channels absent from the chain (zero journeys)
// receive weight exactly 0. A non-convergent solve is surfaced via a wrapped
// ErrNotConverged alongside the approximate result.
func (c *Calculator) RemovalEffects(chain *Chain, universe []string) ([]domain.ChannelWeight, error) {
	observed := make(map[string]bool)
	for _, ch := range chain.Channels() {
		observed[ch] = true
	}

	baseline, err := c.ConversionProbability(chain, "")
	var solveErr error
	if err != nil {
		solveErr = err
		c.log.Warn("Baseline solve did not converge; using approximation",
			zap.Float64("baseline", baseline),
			zap.Error(err))
	}

	weights := make([]domain.ChannelWeight, 0, len(universe))
	var effectSum float64

	for _, ch := range universe {
		w := domain.ChannelWeight{Channel: ch, BaselineProbability: baseline}

		if observed[ch] && baseline > 0 {
			removedProb, err := c.ConversionProbability(chain, ch)
			if err != nil {
				solveErr = err
				c.log.Warn("Removal solve did not converge; using approximation",
					zap.String("channel", ch),
					zap.Error(err))
			}
			effect := (baseline - removedProb) / baseline
			if effect < 0 {
				// Numerical noise; removing a channel cannot raise conversion.
				effect = 0
			}
			w.RemovalEffect = effect
			effectSum += effect
		}

		weights = append(weights, w)
	}

	if effectSum > 0 {
		for i := range weights {
			weights[i].Weight = weights[i].RemovalEffect / effectSum
		}
	}

	return weights, solveErr
}

// Distribute spreads each converting journey's order value across its
// touchpoints proportionally to their channel weights. Journeys whose
// channels all carry zero weight fall back to an even split so the exact-sum
// invariant holds. Integrity errors are collected, not fatal.
func (c *Calculator) Distribute(journeys []domain.Journey, weights []domain.ChannelWeight) ([]domain.AttributionResult, []*attribution.DataIntegrityError) {
	byChannel := make(map[string]float64, len(weights))
	for _, w := range weights {
		byChannel[w.Channel] = w.Weight
	}

	var results []domain.AttributionResult
	var integrity []*attribution.DataIntegrityError
	now := time.Now()

	for _, j := range journeys {
		if !j.Converted() {
			continue
		}
		if len(j.Touchpoints) == 0 {
			integrity = append(integrity, &attribution.DataIntegrityError{
				CustomerID:   j.CustomerID,
				ConversionID: j.Conversion.ConversionID,
				Reason:       "conversion has no preceding touchpoints",
			})
			continue
		}
		if j.Conversion.OrderValue < 0 {
			integrity = append(integrity, &attribution.DataIntegrityError{
				CustomerID:   j.CustomerID,
				ConversionID: j.Conversion.ConversionID,
				Reason:       fmt.Sprintf("negative order value %v", j.Conversion.OrderValue),
			})
			continue
		}

		n := len(j.Touchpoints)
		shares := make([]float64, n)
		var shareSum float64
		for i, tp := range j.Touchpoints {
			shares[i] = byChannel[tp.Channel()]
			shareSum += shares[i]
		}
		if shareSum == 0 {
			for i := range shares {
				shares[i] = 1
			}
			shareSum = float64(n)
		}

		var assigned float64
		for i, tp := range j.Touchpoints {
			credit := j.Conversion.OrderValue * shares[i] / shareSum
			if i == n-1 {
				credit = j.Conversion.OrderValue - assigned
			}
			credit = math.Round(credit*100) / 100
			assigned += credit
			results = append(results, domain.AttributionResult{
				TouchpointID: tp.TouchpointID,
				CustomerID:   j.CustomerID,
				ConversionID: j.Conversion.ConversionID,
				Model:        string(domain.ModelMarkovChain),
				Credit:       credit,
				ComputedAt:   now,
			})
		}
	}

	return results, integrity
}

package markov

import (
	"sort"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// Absorbing and start states of the transition graph. Channel states are
// platform/type pairs produced by Touchpoint.Channel.
const (
	StateStart      = "start"
	StateConversion = "conversion"
	StateNull       = "null"
)

// Chain is a first-order Markov chain over channel states, built by counting
// observed transitions across all journeys. Counting is the first phase of
// the removal-effect pipeline; the solve is the second.
type Chain struct {
	counts map[string]map[string]int
	totals map[string]int
}

// NewChain creates an empty transition chain
func NewChain() *Chain {
	return &Chain{
		counts: make(map[string]map[string]int),
		totals: make(map[string]int),
	}
}

// Observe records a journey's transitions: start through each channel state,
// absorbed by conversion or null. Journeys with no touchpoints and no
// conversion contribute nothing.
func (c *Chain) Observe(j domain.Journey) {
	terminal := StateNull
	if j.Converted() {
		terminal = StateConversion
	}
	if len(j.Touchpoints) == 0 {
		if j.Converted() {
			// Conversion with no observed touchpoints; the integrity report
			// owns this case, the chain ignores it.
			return
		}
		return
	}

	prev := StateStart
	for _, tp := range j.Touchpoints {
		c.add(prev, tp.Channel())
		prev = tp.Channel()
	}
	c.add(prev, terminal)
}

func (c *Chain) add(from, to string) {
	row, ok := c.counts[from]
	if !ok {
		row = make(map[string]int)
		c.counts[from] = row
	}
	row[to]++
	c.totals[from]++
}

// Channels returns all observed channel states in sorted order.
func (c *Chain) Channels() []string {
	seen := make(map[string]bool)
	for from, row := range c.counts {
		if from != StateStart {
			seen[from] = true
		}
		for to := range row {
			if to != StateConversion && to != StateNull {
				seen[to] = true
			}
		}
	}

	channels := make([]string, 0, len(seen))
	for ch := range seen {
		channels = append(channels, ch)
	}
	sort.Strings(channels)
	return channels
}

// Probability returns the observed transition probability from one state to
// another. States with no outgoing transitions yield 0, never a division by
// zero.
func (c *Chain) Probability(from, to string) float64 {
	total := c.totals[from]
	if total == 0 {
		return 0
	}
	return float64(c.counts[from][to]) / float64(total)
}

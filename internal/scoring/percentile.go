package scoring

import "sort"

// Ranking is an immutable sorted snapshot of a reference population, used for
// stable percentile normalization. It is rebuilt on every scoring run, never
// updated incrementally.
type Ranking struct {
	sorted []float64
}

// NewRanking copies and sorts the reference population.
func NewRanking(values []float64) *Ranking {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return &Ranking{sorted: sorted}
}

// Percentile returns 100 times the fraction of the population with a value
// less than or equal to v. Ties share a percentile, and the lone member of a
// population scores 100.
func (r *Ranking) Percentile(v float64) float64 {
	n := len(r.sorted)
	if n == 0 {
		return 0
	}
	// First index with a value strictly greater than v.
	atOrBelow := sort.Search(n, func(i int) bool { return r.sorted[i] > v })
	return 100 * float64(atOrBelow) / float64(n)
}

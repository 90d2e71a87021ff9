package lottery

import (
	"fmt"
	"math/rand/v2"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// RandSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // draw fairness needs uniformity, not unpredictability
}

// DefaultSource draws from the runtime-seeded global generator and is safe
// for concurrent use.
var DefaultSource RandSource = globalSource{}

// Sample selects k distinct elements of candidates uniformly at random.
//
// The candidates are copied and shuffled with Fisher-Yates, walking from the
// last index down to 1 and swapping each position with a uniformly chosen
// index in [0, i]. The first k elements of the shuffle are returned in
// shuffle order, so every k-subset and every ordering of it is equally
// likely. The caller's slice is never modified.
func Sample[T any](src RandSource, candidates []T, k int) ([]T, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: "+ErrFmtWinnerCount, domain.ErrInvalidCount, k)
	}
	if len(candidates) < k {
		return nil, fmt.Errorf("%w: "+ErrFmtInsufficientDetail, domain.ErrInsufficientCandidates, k, len(candidates))
	}
	if src == nil {
		src = DefaultSource
	}

	pool := make([]T, len(candidates))
	copy(pool, candidates)

	for i := len(pool) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}

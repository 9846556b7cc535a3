package quiz

import "math/rand/v2"

// Shuffle returns a uniform random permutation of items (Fisher–Yates over a
// copy). The input slice is never mutated. Callers that want catalog order
// simply skip the call; there is no shuffle-then-discard path.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

package domain

import "math/rand/v2"

// RandomSource picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomSource is backed by the goroutine-safe top-level math/rand/v2 generator.
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

// PickQuestion returns one candidate chosen uniformly by rng, skipping any
// candidate whose id is in exclude. It returns nil when nothing is left.
// Exclusion is by identity: two questions with the same wording stay distinct.
func PickQuestion(candidates []*Question, exclude []int64, rng RandomSource) *Question {
	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	remaining := make([]*Question, 0, len(candidates))
	for _, q := range candidates {
		if q == nil {
			continue
		}
		if _, ok := excluded[q.ID]; ok {
			continue
		}
		remaining = append(remaining, q)
	}

	if len(remaining) == 0 {
		return nil
	}
	return remaining[rng.IntN(len(remaining))]
}

// QuestionIDs returns the ids of qs in order.
func QuestionIDs(qs []*Question) []int64 {
	ids := make([]int64, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

// Package viterbi implements maximum-score path decoding over
// chain-structured scoring functions.
package viterbi

import "math"

// Scorer provides log-scale scores for a chain-structured tagging.
// Implementations may return math.Inf(-1) for forbidden assignments.
type Scorer interface {
	// ScoreInit scores tag at the first position, before emission.
	ScoreInit(tag int) float64
	// ScoreTransition scores moving from prev to curr between adjacent
	// positions.
	ScoreTransition(prev, curr int) float64
	// ScoreEmission scores tag at the given position.
	ScoreEmission(tag, position int) float64
}

// Decode finds the highest-scoring tag assignment for a sequence of the
// given length. Ties break toward the lowest tag index, and backpointers
// record the argmax of the pre-emission quantity. A zero-length sequence
// returns (nil, -Inf); callers reject it earlier.
func Decode(length, numTags int, s Scorer) ([]int, float64) {
	if length == 0 {
		return nil, math.Inf(-1)
	}

	// delta[t][y] = best score of any path ending at position t with tag y
	delta := make([][]float64, length)
	// psi[t][y] = previous tag on that best path
	psi := make([][]int, length)

	delta[0] = make([]float64, numTags)
	psi[0] = make([]int, numTags)
	for y := 0; y < numTags; y++ {
		delta[0][y] = s.ScoreInit(y) + s.ScoreEmission(y, 0)
	}

	for t := 1; t < length; t++ {
		delta[t] = make([]float64, numTags)
		psi[t] = make([]int, numTags)
		for y := 0; y < numTags; y++ {
			bestScore := math.Inf(-1)
			bestPrev := 0
			for yp := 0; yp < numTags; yp++ {
				score := delta[t-1][yp] + s.ScoreTransition(yp, y)
				if score > bestScore {
					bestScore = score
					bestPrev = yp
				}
			}
			delta[t][y] = bestScore + s.ScoreEmission(y, t)
			psi[t][y] = bestPrev
		}
	}

	bestScore := math.Inf(-1)
	bestTag := 0
	for y := 0; y < numTags; y++ {
		if delta[length-1][y] > bestScore {
			bestScore = delta[length-1][y]
			bestTag = y
		}
	}

	path := make([]int, length)
	path[length-1] = bestTag
	for t := length - 2; t >= 0; t-- {
		path[t] = psi[t+1][path[t+1]]
	}
	return path, bestScore
}

package scoring

import (
	"math"

	"github.com/botirk38/bowscore/bow"
)

// L1 scores two vectors by inverted L1 distance. Both cursors advance
// one entry at a time; a word held by only one vector contributes
// |vi|-|vi| = 0 to the distance rearrangement, so only matched words
// accumulate. Symmetric; in [0,1] for L1-normalized inputs, 1 for
// identical vectors.
func L1(a, b bow.Vector) float64 {
	var sum float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID == b[j].ID:
			vi, wi := a[i].Weight, b[j].Weight
			sum += math.Abs(vi-wi) - math.Abs(vi) - math.Abs(wi)
			i++
			j++
		case a[i].ID < b[j].ID:
			i++
		default:
			j++
		}
	}

	return -sum / 2
}

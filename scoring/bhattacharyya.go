package scoring

import (
	"math"

	"github.com/botirk38/bowscore/bow"
)

// Bhattacharyya scores two vectors with the Bhattacharyya coefficient:
// the sum of sqrt(vi*wi) over matched words. The lagging cursor jumps
// to the other cursor's word via binary search. Symmetric; in [0,1]
// for L1-normalized inputs, with score(a,a) equal to a's total weight.
func Bhattacharyya(a, b bow.Vector) float64 {
	var sum float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID == b[j].ID:
			sum += math.Sqrt(a[i].Weight * b[j].Weight)
			i++
			j++
		case a[i].ID < b[j].ID:
			i = a.LowerBound(b[j].ID)
		default:
			j = b.LowerBound(a[i].ID)
		}
	}

	return sum
}

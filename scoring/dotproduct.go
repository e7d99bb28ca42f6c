package scoring

import "github.com/botirk38/bowscore/bow"

// DotProduct scores two vectors by the dot product of their weights
// over matched words. The lagging cursor jumps to the other cursor's
// word via binary search. Symmetric; unbounded, as no normalization is
// applied.
func DotProduct(a, b bow.Vector) float64 {
	var sum float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID == b[j].ID:
			sum += a[i].Weight * b[j].Weight
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

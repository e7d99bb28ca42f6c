package scoring

import "github.com/botirk38/bowscore/bow"

// ChiSquare scores two vectors with the chi-square kernel. Per matched
// word the rearranged term is vi*wi/(vi+wi); the constant factor -4 of
// (vi-wi)^2/(vi+wi) - vi - wi is folded into the final 2*sum. The
// lagging cursor jumps straight to the other cursor's word, so large
// identifier gaps cost a binary search instead of a walk. Symmetric;
// in [0,1] for normalized inputs.
func ChiSquare(a, b bow.Vector) float64 {
	var sum float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID == b[j].ID:
			vi, wi := a[i].Weight, b[j].Weight
			if vi+wi != 0 {
				sum += vi * wi / (vi + wi)
			}
			i++
			j++
		case a[i].ID < b[j].ID:
			i = a.LowerBound(b[j].ID)
		default:
			j = b.LowerBound(a[i].ID)
		}
	}

	return 2 * sum
}

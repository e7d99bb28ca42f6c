package scoring

import (
	"math"

	"github.com/botirk38/bowscore/bow"
)

// KL scores two vectors with the Kullback-Leibler divergence of a from
// b. A word with weight in both vectors contributes vi*ln(vi/wi); a
// word with non-zero weight only in a contributes vi*(ln(vi)-LogEps),
// the divergence term with LogEps standing in for ln(0); a word only
// in b contributes nothing and b's cursor jumps ahead to a's word.
// Entries of a remaining after b is exhausted take the same
// epsilon-floored term. Asymmetric and unbounded; not scalable to a
// fixed range.
func KL(a, b bow.Vector) float64 {
	var sum float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		vi := a[i].Weight
		switch {
		case a[i].ID == b[j].ID:
			if wi := b[j].Weight; vi != 0 && wi != 0 {
				sum += vi * math.Log(vi/wi)
			}
			i++
			j++
		case a[i].ID < b[j].ID:
			if vi != 0 {
				sum += vi * (math.Log(vi) - LogEps)
			}
			i++
		default:
			j = b.LowerBound(a[i].ID)
		}
	}

	for ; i < len(a); i++ {
		if vi := a[i].Weight; vi != 0 {
			sum += vi * (math.Log(vi) - LogEps)
		}
	}

	return sum
}

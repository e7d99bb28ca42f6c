// Package scoring provides the similarity and distance measures used to
// compare two sparse bag-of-words vectors.
package scoring

import (
	"errors"
	"math"

	"github.com/botirk38/bowscore/bow"
)

// Func computes a similarity or distance score between two sparse
// bag-of-words vectors. Implementations are pure: they never mutate
// their inputs and are safe to call concurrently, including over the
// same vectors.
type Func func(a, b bow.Vector) float64

// Type identifies one of the built-in scoring measures.
type Type int

const (
	TypeL1 Type = iota
	TypeL2
	TypeChiSquare
	TypeKL
	TypeBhattacharyya
	TypeDotProduct
)

// LogEps is ln of the float64 machine epsilon. The KL measure uses it
// in place of ln(0) when a word is present in only one vector.
var LogEps = math.Log(math.Nextafter(1, 2) - 1)

// ErrUnknownType is returned by New for a Type it does not recognize.
var ErrUnknownType = errors.New("unknown scoring type")

// New returns the scoring function for t.
func New(t Type) (Func, error) {
	switch t {
	case TypeL1:
		return L1, nil
	case TypeL2:
		return L2, nil
	case TypeChiSquare:
		return ChiSquare, nil
	case TypeKL:
		return KL, nil
	case TypeBhattacharyya:
		return Bhattacharyya, nil
	case TypeDotProduct:
		return DotProduct, nil
	default:
		return nil, ErrUnknownType
	}
}

// MustNormalize reports the norm callers should apply to both vectors
// before scoring for the measure's documented range to hold. ok is
// false for measures whose output cannot be scaled to a fixed range
// (KL divergence, dot product).
func MustNormalize(t Type) (norm bow.Norm, ok bool) {
	switch t {
	case TypeL1, TypeKL, TypeBhattacharyya, TypeDotProduct:
		norm = bow.NormL1
	case TypeL2, TypeChiSquare:
		norm = bow.NormL2
	}
	switch t {
	case TypeKL, TypeDotProduct:
		return norm, false
	default:
		return norm, true
	}
}

// String returns the measure's name.
func (t Type) String() string {
	switch t {
	case TypeL1:
		return "l1"
	case TypeL2:
		return "l2"
	case TypeChiSquare:
		return "chisquare"
	case TypeKL:
		return "kl"
	case TypeBhattacharyya:
		return "bhattacharyya"
	case TypeDotProduct:
		return "dotproduct"
	default:
		return "unknown"
	}
}

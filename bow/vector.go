// Package bow defines the sparse bag-of-words vector scored by the
// scoring package. A vector maps visual-word identifiers to weights;
// identifiers it does not hold weigh zero.
package bow

import (
	"math"
	"sort"
)

// WordID identifies a visual word in the vocabulary.
type WordID uint32

// WordValue is the weight a vector assigns to a word.
type WordValue = float64

// Entry is a single word-weight pair.
type Entry struct {
	ID     WordID
	Weight WordValue
}

// Vector is a sparse bag-of-words descriptor: entries sorted by
// ascending ID, IDs unique. Iterating the slice directly yields the
// ascending order the scoring merge-joins rely on. The zero value is
// an empty vector ready for use.
type Vector []Entry

// Norm selects a vector norm for Normalize.
type Norm int

const (
	NormL1 Norm = iota
	NormL2
)

// FromMap builds a Vector from a word-weight map.
func FromMap(weights map[WordID]WordValue) Vector {
	if len(weights) == 0 {
		return nil
	}
	v := make(Vector, 0, len(weights))
	for id, w := range weights {
		v = append(v, Entry{ID: id, Weight: w})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].ID < v[j].ID })
	return v
}

// Len returns the number of stored entries, counting stored zeros.
func (v Vector) Len() int { return len(v) }

// LowerBound returns the index of the first entry with ID >= id, or
// len(v) when no such entry exists.
func (v Vector) LowerBound(id WordID) int {
	return sort.Search(len(v), func(i int) bool { return v[i].ID >= id })
}

// Get returns the weight stored for id. ok is false when id is absent;
// absent means weight zero.
func (v Vector) Get(id WordID) (WordValue, bool) {
	i := v.LowerBound(id)
	if i < len(v) && v[i].ID == id {
		return v[i].Weight, true
	}
	return 0, false
}

// Add accumulates w into the entry for id, inserting the entry if id
// is not present. Insertion keeps the slice sorted, so words may be
// added in any order.
func (v *Vector) Add(id WordID, w WordValue) {
	i := v.LowerBound(id)
	if i < len(*v) && (*v)[i].ID == id {
		(*v)[i].Weight += w
		return
	}
	v.insert(i, Entry{ID: id, Weight: w})
}

// AddIfAbsent inserts an entry for id with weight w only when id is
// not already present.
func (v *Vector) AddIfAbsent(id WordID, w WordValue) {
	i := v.LowerBound(id)
	if i < len(*v) && (*v)[i].ID == id {
		return
	}
	v.insert(i, Entry{ID: id, Weight: w})
}

func (v *Vector) insert(i int, e Entry) {
	*v = append(*v, Entry{})
	copy((*v)[i+1:], (*v)[i:])
	(*v)[i] = e
}

// Normalize scales the weights so the chosen norm of the vector is 1.
// Vectors with zero norm are left unchanged. The scoring layer never
// normalizes; callers apply this when a measure expects it (see
// scoring.MustNormalize).
func (v Vector) Normalize(n Norm) {
	var norm float64
	if n == NormL1 {
		for _, e := range v {
			norm += math.Abs(e.Weight)
		}
	} else {
		for _, e := range v {
			norm += e.Weight * e.Weight
		}
		norm = math.Sqrt(norm)
	}
	if norm == 0 {
		return
	}
	for i := range v {
		v[i].Weight /= norm
	}
}

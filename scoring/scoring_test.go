package scoring

import (
	"math"
	"testing"

	"github.com/botirk38/bowscore/bow"
)

const tol = 1e-12

// all built-in measures, for properties that hold across the family
var allFuncs = map[string]Func{
	"L1":            L1,
	"L2":            L2,
	"ChiSquare":     ChiSquare,
	"KL":            KL,
	"Bhattacharyya": Bhattacharyya,
	"DotProduct":    DotProduct,
}

func TestIdenticalNormalizedVectors(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.5, 3: 0.5})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.5, 3: 0.5})

	t.Run("L1", func(t *testing.T) {
		// each matched word contributes -(|vi-wi|-|vi|-|wi|)/2 = 0.5
		if got := L1(a, b); math.Abs(got-1) > tol {
			t.Errorf("L1 = %f, want 1", got)
		}
	})
	t.Run("L2", func(t *testing.T) {
		if got := L2(a, b); math.Abs(got-1) > tol {
			t.Errorf("L2 = %f, want 1", got)
		}
	})
	t.Run("ChiSquare", func(t *testing.T) {
		if got := ChiSquare(a, b); math.Abs(got-1) > tol {
			t.Errorf("ChiSquare = %f, want 1", got)
		}
	})
	t.Run("Bhattacharyya", func(t *testing.T) {
		if got := Bhattacharyya(a, b); math.Abs(got-1) > tol {
			t.Errorf("Bhattacharyya = %f, want 1", got)
		}
	})
	t.Run("DotProduct", func(t *testing.T) {
		if got := DotProduct(a, b); math.Abs(got-0.5) > tol {
			t.Errorf("DotProduct = %f, want 0.5", got)
		}
	})
	t.Run("KL", func(t *testing.T) {
		// vi*ln(vi/vi) = 0 for every matched word
		if got := KL(a, b); math.Abs(got) > tol {
			t.Errorf("KL = %f, want 0", got)
		}
	})
}

func TestDisjointSupports(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{2: 1.0})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{5: 1.0})

	for _, name := range []string{"L1", "L2", "ChiSquare", "Bhattacharyya", "DotProduct"} {
		t.Run(name, func(t *testing.T) {
			if got := allFuncs[name](a, b); got != 0 {
				t.Errorf("%s = %f, want 0 for disjoint supports", name, got)
			}
		})
	}

	t.Run("KL", func(t *testing.T) {
		// a's word is unmatched: 1*(ln(1)-LogEps) = -LogEps
		if got := KL(a, b); math.Abs(got+LogEps) > tol {
			t.Errorf("KL = %f, want %f", got, -LogEps)
		}
	})
}

func TestEmptyVectors(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.5})
	var empty bow.Vector

	for _, name := range []string{"L1", "L2", "ChiSquare", "Bhattacharyya", "DotProduct"} {
		t.Run(name, func(t *testing.T) {
			if got := allFuncs[name](a, empty); got != 0 {
				t.Errorf("%s(a, empty) = %f, want 0", name, got)
			}
			if got := allFuncs[name](empty, a); got != 0 {
				t.Errorf("%s(empty, a) = %f, want 0", name, got)
			}
			if got := allFuncs[name](empty, empty); got != 0 {
				t.Errorf("%s(empty, empty) = %f, want 0", name, got)
			}
		})
	}

	t.Run("KLAgainstEmpty", func(t *testing.T) {
		want := 0.5 * (math.Log(0.5) - LogEps)
		if got := KL(a, empty); math.Abs(got-want) > tol {
			t.Errorf("KL(a, empty) = %f, want %f", got, want)
		}
		if got := KL(empty, a); got != 0 {
			t.Errorf("KL(empty, a) = %f, want 0", got)
		}
	})
}

func TestSymmetry(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.2, 4: 0.3, 9: 0.5})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.1, 3: 0.4, 9: 0.5})

	for _, name := range []string{"L1", "L2", "ChiSquare", "Bhattacharyya", "DotProduct"} {
		t.Run(name, func(t *testing.T) {
			fn := allFuncs[name]
			ab, ba := fn(a, b), fn(b, a)
			if math.Abs(ab-ba) > tol {
				t.Errorf("%s not symmetric: %f vs %f", name, ab, ba)
			}
		})
	}

	t.Run("KLAsymmetric", func(t *testing.T) {
		ab, ba := KL(a, b), KL(b, a)
		if math.Abs(ab-ba) <= tol {
			t.Errorf("KL unexpectedly symmetric for these inputs: %f vs %f", ab, ba)
		}
	})
}

func TestSelfSimilarityEqualsTotalWeight(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.3, 5: 0.7})
	var total float64
	for _, e := range a {
		total += e.Weight
	}

	if got := Bhattacharyya(a, a); math.Abs(got-total) > tol {
		t.Errorf("Bhattacharyya(a,a) = %f, want total weight %f", got, total)
	}
	if got := ChiSquare(a, a); math.Abs(got-total) > tol {
		t.Errorf("ChiSquare(a,a) = %f, want total weight %f", got, total)
	}
}

func TestKLKnownValue(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.5, 3: 0.2})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.25})

	// word 1 matched, word 3 survives b and takes the epsilon floor
	want := 0.5*math.Log(0.5/0.25) + 0.2*(math.Log(0.2)-LogEps)
	if got := KL(a, b); math.Abs(got-want) > tol {
		t.Errorf("KL = %f, want %f", got, want)
	}
}

func TestStoredZerosAreScoreNeutral(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.5, 3: 0.5})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.1, 2: 0.4, 3: 0.5})

	// same vectors with explicit zero entries sprinkled in: matched
	// against a weight, matched against another zero, and unmatched
	// past either end
	az := append(bow.Vector(nil), a...)
	az.Add(2, 0)
	az.Add(7, 0)
	bz := append(bow.Vector(nil), b...)
	bz.Add(5, 0)
	bz.Add(7, 0)

	for name, fn := range allFuncs {
		t.Run(name, func(t *testing.T) {
			want := fn(a, b)
			for _, got := range []float64{fn(az, b), fn(a, bz), fn(az, bz)} {
				if math.Abs(got-want) > tol {
					t.Errorf("%s changed by zero entries: %f, want %f", name, got, want)
				}
			}
		})
	}
}

func TestL2MatchesL1(t *testing.T) {
	// the L2 measure deliberately computes the same quantity as L1,
	// only through an order-independent reduction
	pairs := []struct {
		a, b bow.Vector
	}{
		{
			bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.2, 4: 0.3, 9: 0.5}),
			bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.1, 3: 0.4, 9: 0.5}),
		},
		{
			bow.FromMap(map[bow.WordID]bow.WordValue{10: 1.0}),
			bow.FromMap(map[bow.WordID]bow.WordValue{10: 0.25, 90: 0.75}),
		},
		{nil, nil},
	}

	for _, p := range pairs {
		if l1, l2 := L1(p.a, p.b), L2(p.a, p.b); math.Abs(l1-l2) > tol {
			t.Errorf("L2 = %f diverges from L1 = %f", l2, l1)
		}
	}
}

func TestL2ParallelMatchesSequential(t *testing.T) {
	// large enough to cross the fan-out threshold
	var a, b bow.Vector
	for i := 0; i < 3000; i++ {
		a.Add(bow.WordID(i*2), 1/float64(i+1))
		if i%3 != 0 {
			b.Add(bow.WordID(i*2), 1/float64(i+2))
		}
	}

	want := L1(a, b)
	got := L2(a, b)
	// summation order differs between the two, exact equality is not
	// guaranteed
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("parallel L2 = %v, sequential reference = %v", got, want)
	}
}

func TestInputsNotMutated(t *testing.T) {
	a := bow.FromMap(map[bow.WordID]bow.WordValue{1: 0.2, 4: 0.8})
	b := bow.FromMap(map[bow.WordID]bow.WordValue{2: 0.6, 4: 0.4})
	ac := append(bow.Vector(nil), a...)
	bc := append(bow.Vector(nil), b...)

	for name, fn := range allFuncs {
		fn(a, b)
		for i := range a {
			if a[i] != ac[i] {
				t.Fatalf("%s mutated its first input", name)
			}
		}
		for i := range b {
			if b[i] != bc[i] {
				t.Fatalf("%s mutated its second input", name)
			}
		}
	}
}

func TestNew(t *testing.T) {
	for _, typ := range []Type{TypeL1, TypeL2, TypeChiSquare, TypeKL, TypeBhattacharyya, TypeDotProduct} {
		fn, err := New(typ)
		if err != nil {
			t.Errorf("New(%v) returned error: %v", typ, err)
		}
		if fn == nil {
			t.Errorf("New(%v) returned nil func", typ)
		}
	}

	if _, err := New(Type(42)); err != ErrUnknownType {
		t.Errorf("New(42) error = %v, want ErrUnknownType", err)
	}
}

func TestMustNormalize(t *testing.T) {
	cases := []struct {
		typ  Type
		norm bow.Norm
		ok   bool
	}{
		{TypeL1, bow.NormL1, true},
		{TypeL2, bow.NormL2, true},
		{TypeChiSquare, bow.NormL2, true},
		{TypeKL, bow.NormL1, false},
		{TypeBhattacharyya, bow.NormL1, true},
		{TypeDotProduct, bow.NormL1, false},
	}
	for _, c := range cases {
		norm, ok := MustNormalize(c.typ)
		if norm != c.norm || ok != c.ok {
			t.Errorf("MustNormalize(%v) = (%v, %v), want (%v, %v)", c.typ, norm, ok, c.norm, c.ok)
		}
	}
}

func TestLogEps(t *testing.T) {
	want := math.Log(2.220446049250313e-16)
	if math.Abs(LogEps-want) > tol {
		t.Errorf("LogEps = %v, want ln(float64 epsilon) = %v", LogEps, want)
	}
}

func BenchmarkL1(b *testing.B) {
	benchmarkFunc(b, L1)
}

func BenchmarkL2(b *testing.B) {
	benchmarkFunc(b, L2)
}

func BenchmarkBhattacharyya(b *testing.B) {
	benchmarkFunc(b, Bhattacharyya)
}

func benchmarkFunc(b *testing.B, fn Func) {
	var x, y bow.Vector
	for i := 0; i < 10000; i++ {
		x.Add(bow.WordID(i*3), 1/float64(i+1))
		y.Add(bow.WordID(i*5), 1/float64(i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(x, y)
	}
}

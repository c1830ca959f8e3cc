package interp

import (
	"strconv"
	"testing"
)

func benchTable(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)

	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i % 7)
	}

	return xs, ys
}

func BenchmarkAt(b *testing.B) {
	for _, n := range []int{16, 81, 1024} {
		xs, ys := benchTable(n)

		l, err := NewLinear(xs, ys)
		if err != nil {
			b.Fatalf("NewLinear: %v", err)
		}

		x := 0.37 * float64(n-1)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				if _, err := l.At(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEval(b *testing.B) {
	xs, ys := benchTable(81)

	l, err := NewLinear(xs, ys)
	if err != nil {
		b.Fatalf("NewLinear: %v", err)
	}

	queries := make([]float64, 80)
	for i := range queries {
		queries[i] = float64(i)
	}

	dst := make([]float64, len(queries))

	b.ReportAllocs()
	b.SetBytes(int64(len(queries) * 8))

	for range b.N {
		if err := l.Eval(dst, queries); err != nil {
			b.Fatal(err)
		}
	}
}

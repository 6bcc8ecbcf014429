package watershed_test

import (
	"math/rand"
	"testing"

	"github.com/heliograph/fluxseg/field"
	"github.com/heliograph/fluxseg/watershed"
)

// benchFixture builds an n×n field with a fixed seed plus a regular
// grid of markers, so runs are comparable across machines.
func benchFixture(b *testing.B, n, spacing int) (*field.Field, *field.LabelMap) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, n)
	for r := range rows {
		rows[r] = make([]float64, n)
		for c := range rows[r] {
			rows[r][c] = rng.Float64() * 200
		}
	}
	f, err := field.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows: %v", err)
	}

	var seeds []field.Coord
	for r := spacing / 2; r < n; r += spacing {
		for c := spacing / 2; c < n; c += spacing {
			seeds = append(seeds, field.Coord{Row: r, Col: c})
		}
	}
	m, err := watershed.Markers(n, n, seeds)
	if err != nil {
		b.Fatalf("Markers: %v", err)
	}
	return f, m
}

func BenchmarkFromMarkers(b *testing.B) {
	f, m := benchFixture(b, 512, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := watershed.FromMarkers(f, m, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	f, m := benchFixture(b, 512, 64)
	pos, err := watershed.FromMarkers(f, m, 20)
	if err != nil {
		b.Fatal(err)
	}
	neg, err := watershed.FromMarkers(f, m, 120)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := watershed.Merge(pos, neg); err != nil {
			b.Fatal(err)
		}
	}
}

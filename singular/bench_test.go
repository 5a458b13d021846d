package singular_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/polyroot/ndarray"
	"github.com/katalvlaran/polyroot/singular"
)

// BenchmarkIsNonsingular measures the LU-based check on a random 64×64 matrix.
func BenchmarkIsNonsingular(b *testing.B) {
	const n = 64
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	a, err := ndarray.New([]int{n, n}, data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = singular.IsNonsingular(a); err != nil {
			b.Fatal(err)
		}
	}
}

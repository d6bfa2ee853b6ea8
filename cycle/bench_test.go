package cycle_test

import (
	"testing"

	"github.com/katalvlaran/hamgrid/cycle"
)

// BenchmarkBuild measures assembly plus validation of a 256×256 cycle.
// Complexity: O(n²).
func BenchmarkBuild(b *testing.B) {
	const n = 256
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cycle.Build(n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkValidate isolates the invariant check.
func BenchmarkValidate(b *testing.B) {
	const n = 256
	c, err := cycle.Build(n)
	if err != nil {
		b.Fatal(err)
	}
	steps := c.Steps()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cycle.Validate(steps, n); err != nil {
			b.Fatal(err)
		}
	}
}

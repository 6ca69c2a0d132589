package random_test

import (
	"testing"

	"github.com/ftxqxd/schroedinger-box/random"
)

func BenchmarkDefault_IntN(b *testing.B) {
	src := random.Default()
	for i := 0; i < b.N; i++ {
		_, _ = src.IntN(10)
	}
}

func BenchmarkSeeded_IntN(b *testing.B) {
	src, _ := random.NewSeeded(seed(3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = src.IntN(10)
	}
}

func BenchmarkLocked_IntN(b *testing.B) {
	src := random.NewLocked(nil)
	for i := 0; i < b.N; i++ {
		_, _ = src.IntN(10)
	}
}

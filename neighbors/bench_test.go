package neighbors_test

import (
	"testing"

	"github.com/katalvlaran/roundplan/neighbors"
)

// BenchmarkStore_SequentialGet scans a 10k-item store by position.
func BenchmarkStore_SequentialGet(b *testing.B) {
	const n = 10000
	s := neighbors.NewWithCapacity[int](n)
	for i := 0; i < n; i++ {
		s.Insert(i, -1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for p := 0; p < n; p++ {
			_, _ = s.Get(p)
		}
	}
}

// BenchmarkStore_Append measures appends into a preallocated store.
func BenchmarkStore_Append(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := neighbors.NewWithCapacity[int](1024)
		for p := 0; p < 1024; p++ {
			s.Insert(p, -1)
		}
	}
}

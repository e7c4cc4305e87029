package gaussjordan_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rowreduce/gaussjordan"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		A := dominant(b, n, int64(n))
		e, err := gaussjordan.New(A)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := e.Solve(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolve_WithHook(b *testing.B) {
	A := dominant(b, 32, 7)
	e, err := gaussjordan.New(A, gaussjordan.WithOnStep(func(gaussjordan.Step) {}))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

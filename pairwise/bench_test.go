package pairwise_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/pairwise"
	"github.com/katalvlaran/hilldiv/taxa"
)

func benchCommunity(b *testing.B, sites, species int) *community.Matrix {
	b.Helper()
	data := make([][]float64, sites)
	for i := range data {
		data[i] = make([]float64, species)
		for j := range data[i] {
			data[i][j] = float64((i*7 + j*13) % 11)
		}
		data[i][i%species]++
	}
	comm, err := community.New(data, nil, nil)
	if err != nil {
		b.Fatal(err)
	}

	return comm
}

func BenchmarkDecompose(b *testing.B) {
	comm := benchCommunity(b, 40, 60)
	for _, workers := range []int{1, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := pairwise.Decompose(comm, taxa.Pooler{}, 1, pairwise.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package taxa_test

import (
	"fmt"

	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/taxa"
)

func ExamplePartition() {
	comm, _ := community.New([][]float64{{1, 1, 0}, {0, 1, 1}}, []string{"A", "B"}, nil)
	res, _ := taxa.Partition(comm, 0)
	fmt.Printf("gamma=%.1f alpha=%.1f beta=%.2f\n", res.Gamma, res.Alpha, res.Beta)
	// Output: gamma=3.0 alpha=2.0 beta=1.50
}

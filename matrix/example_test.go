package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/hilldiv/matrix"
)

// ExampleLabeled_SelectSymmetric carves a species distance matrix down to the
// species of a community, in the community's order.
func ExampleLabeled_SelectSymmetric() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0.2, 0.9},
		{0.2, 0, 0.5},
		{0.9, 0.5, 0},
	})
	species := []string{"oak", "ash", "yew"}
	lab, _ := matrix.NewLabeled(d, species, species)

	sub, _ := lab.SelectSymmetric([]string{"yew", "oak"})
	fmt.Println(sub.RowLabels())
	fmt.Print(sub)
	// Output:
	// [yew oak]
	// [0, 0.9]
	// [0.9, 0]
}

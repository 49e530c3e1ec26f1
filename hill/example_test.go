package hill_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/hill"
)

// ExampleNumber shows the three classic members of the Hill family on one
// community of four species.
func ExampleNumber() {
	abundances := []float64{10, 10, 10, 10}
	for _, q := range []float64{0, 1, 2} {
		d, err := hill.Number(abundances, q)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("q=%g D=%.2f\n", q, d)
	}
	// Output:
	// q=0 D=4.00
	// q=1 D=4.00
	// q=2 D=4.00
}

// ExampleWeighted aggregates ordinariness values: two equally abundant species
// count as two when distinct and as fewer when they overlap.
func ExampleWeighted() {
	w := []float64{0.5, 0.5}
	for _, x := range [][]float64{{0.5, 0.5}, {0.9, 0.9}} {
		d, _ := hill.Weighted(w, x, 2)
		fmt.Printf("D=%.2f\n", d)
	}
	_, err := hill.Weighted(w, []float64{1}, 2)
	fmt.Println(errors.Is(err, hilldiv.ErrShapeMismatch))
	// Output:
	// D=2.00
	// D=1.11
	// true
}

package companion_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyroot/companion"
	"github.com/katalvlaran/polyroot/ndarray"
)

// ExampleBuild prints the companion matrix of (x-1)(x-2)(x-3) = -6 + 11x - 6x² + x³.
func ExampleBuild() {
	f, err := companion.Build(ndarray.Vector(-6, 11, -6, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(f)
	// Output:
	// [0, 1, 0]
	// [0, 0, 1]
	// [6, -11, 6]
}

// ExampleBuild_zeroLeading shows that a vanishing leading coefficient is rejected.
func ExampleBuild_zeroLeading() {
	_, err := companion.Build(ndarray.Vector(1, 2, 0))
	fmt.Println(errors.Is(err, companion.ErrZeroLeading), ndarray.KindOf(err))
	// Output:
	// true degenerate
}

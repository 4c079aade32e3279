package hamming_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strsim/hamming"
)

// ExampleDistance shows a valid comparison and the length-mismatch error.
func ExampleDistance() {
	d, err := hamming.Distance("karolin", "kathrin")
	fmt.Println(d, err)

	_, err = hamming.Distance("karolin", "karl")
	fmt.Println(errors.Is(err, hamming.ErrLengthMismatch))
	// Output:
	// 3 <nil>
	// true
}

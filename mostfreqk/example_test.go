package mostfreqk_test

import (
	"fmt"

	"github.com/katalvlaran/strsim/mostfreqk"
)

// ExampleTopK lists the two most frequent letters of "research".
func ExampleTopK() {
	top, _ := mostfreqk.TopK("research", 2)
	for _, e := range top {
		fmt.Printf("%s:%d ", e.Char, e.Count)
	}
	fmt.Println()
	// Output:
	// r:2 e:2
}

// ExampleDistance compares the raw and normalized scores of one pair.
func ExampleDistance() {
	d, _ := mostfreqk.Distance("aabbbcc", "bbccddee", 3, mostfreqk.DefaultMaxDistance)
	n, _ := mostfreqk.Normalized("aabbbcc", "bbccddee", 3)
	fmt.Println(d)
	fmt.Printf("%.1f\n", n)
	// Output:
	// 5
	// 0.6
}

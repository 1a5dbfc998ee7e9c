package evaluator_test

import (
	"fmt"

	"github.com/cpdlab/cpd/evaluator"
)

func ExampleMatch() {
	result := evaluator.Match([]int{100, 200}, []int{95, 205, 400}, 10)
	fmt.Printf("correct=%d incorrect=%d not_found=%d\n", result.Correct, result.Incorrect, result.NotFound)
	// Output: correct=2 incorrect=1 not_found=0
}

package symtable

import (
	"errors"
	"fmt"
)

// DefaultCapacities is the sequence of bucket counts a table grows through.
// Each step is a prime roughly double the previous one.
var DefaultCapacities = []int{509, 1021, 2039, 4093, 8191, 16381, 32749, 65521}

// The list variant is a table with a single bucket that never grows.
var listCapacities = []int{1}

var errEmptyCapacities = errors.New("capacity sequence is empty")

func validateCapacities(steps []int) error {
	if len(steps) == 0 {
		return errEmptyCapacities
	}

	prev := 0
	for i, c := range steps {
		if c <= prev {
			return fmt.Errorf("capacity step %d (%d) must be positive and greater than %d", i, c, prev)
		}
		prev = c
	}

	return nil
}

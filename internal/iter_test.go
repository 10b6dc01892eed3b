package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"a", "b"})
	b := slices.All([]string{"c"})

	var keys []int
	var vals []string
	for k, v := range IterSeq2Concat(a, b) {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, vals)
}

func TestIterSeq2ConcatOverride(t *testing.T) {
	assert := assert.New(t)

	merged := maps.Collect(IterSeq2Concat(
		maps.All(map[string]int{"x": 1, "y": 2}),
		maps.All(map[string]int{"y": 3}),
	))

	assert.Equal(map[string]int{"x": 1, "y": 3}, merged)
}

func TestIterSeq2ConcatStop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range IterSeq2Concat(slices.All([]int{1, 2, 3}), slices.All([]int{4})) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

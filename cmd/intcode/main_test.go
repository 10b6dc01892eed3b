package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/config"
)

func TestPatchList(t *testing.T) {
	assert := assert.New(t)

	var pl patchList
	assert.NoError(pl.Set("1=12"))
	assert.NoError(pl.Set("2=-2"))
	assert.Equal(patchList{{Index: 1, Value: 12}, {Index: 2, Value: -2}}, pl)
	assert.Equal("1=12,2=-2", pl.String())

	assert.Error(pl.Set("12"))
	assert.Error(pl.Set("x=1"))
	assert.Error(pl.Set("1=y"))
	assert.Len(pl, 2)

	assert.Equal([]config.Patch(pl), []config.Patch{{Index: 1, Value: 12}, {Index: 2, Value: -2}})
}

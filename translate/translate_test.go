package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("position 12 out of bounds", From("position %d out of bounds", 12))
	assert.Equal("plain", From("plain"))
}

func TestFromGrouping(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)
	assert.Equal("tick 1,234", From("tick %v", 1234))

	SetLanguage(language.German)
	assert.Equal("tick 1.234", From("tick %v", 1234))

	SetLanguage(language.AmericanEnglish)
}

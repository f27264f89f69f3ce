package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("unknown implied instruction 'xyz'", From("unknown %v instruction '%v'", "implied", "xyz"))
	assert.Equal("opcode duplicated", From("opcode duplicated"))
}

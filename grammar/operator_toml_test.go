package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OperatorTableFromTOML_parsesLevelsInOrder(t *testing.T) {
	assert := assert.New(t)

	doc := `
[[level]]
assoc = "left"
terminals = ["+", "-"]

[[level]]
assoc = "left"
terminals = ["*", "/"]

[[level]]
assoc = "right"
terminals = ["^"]
`
	ot, err := OperatorTableFromTOML([]byte(doc))
	assert.NoError(err)

	plus, ok := ot.PrecedenceOf("+")
	assert.True(ok)
	assert.Equal(1, plus)

	caret, ok := ot.PrecedenceOf("^")
	assert.True(ok)
	assert.Equal(3, caret)

	assoc, ok := ot.AssocOf("^")
	assert.True(ok)
	assert.Equal(RightAssoc, assoc)
}

func Test_OperatorTableFromTOML_rejectsUnknownAssociativity(t *testing.T) {
	assert := assert.New(t)

	doc := `
[[level]]
assoc = "sideways"
terminals = ["+"]
`
	_, err := OperatorTableFromTOML([]byte(doc))
	assert.Error(err)
}

func Test_OperatorTableFromTOML_defaultsMissingAssocToNonAssoc(t *testing.T) {
	assert := assert.New(t)

	doc := `
[[level]]
terminals = ["=="]
`
	ot, err := OperatorTableFromTOML([]byte(doc))
	assert.NoError(err)

	assoc, ok := ot.AssocOf("==")
	assert.True(ok)
	assert.Equal(NonAssoc, assoc)
}

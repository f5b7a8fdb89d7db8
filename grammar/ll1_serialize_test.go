package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LL1Table_MarshalUnmarshalBinary_roundTrips(t *testing.T) {
	assert := assert.New(t)

	orig := LL1Table{
		"E": map[string]Production{
			"int": {"T", "E'"},
			"(":   {"T", "E'"},
		},
		"E'": map[string]Production{
			"+": {"+", "T", "E'"},
			"$": Epsilon,
			")": Epsilon,
		},
	}

	data, err := orig.MarshalBinary()
	assert.NoError(err)
	assert.NotEmpty(data)

	got, err := DecodeLL1Table(data)
	assert.NoError(err)

	for nt, row := range orig {
		for term, prod := range row {
			gotProd, ok := got.Get(nt, term)
			assert.True(ok, "missing cell [%s, %s]", nt, term)
			assert.True(prod.Equal(gotProd), "cell [%s, %s] mismatch: want %v got %v", nt, term, prod, gotProd)
		}
	}
}

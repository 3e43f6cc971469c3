package relalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suppliesFixture is the classic division example: which suppliers stock
// every listed part?
func suppliesFixture() (*Relation, *Relation) {
	supplies := MustNewRelation("Supplies",
		[]Attribute{"supplier", "part"},
		[]Tuple{
			{"s1", "bolt"},
			{"s1", "nut"},
			{"s1", "washer"},
			{"s2", "bolt"},
			{"s2", "nut"},
			{"s3", "washer"},
		})
	parts := MustNewRelation("Parts",
		[]Attribute{"part"},
		[]Tuple{
			{"bolt"},
			{"nut"},
		})
	return supplies, parts
}

func TestDivide(t *testing.T) {
	supplies, parts := suppliesFixture()

	result, err := Divide(supplies, parts)
	require.NoError(t, err)

	assert.Equal(t, []Attribute{"supplier"}, result.Attributes())
	require.Equal(t, 2, result.Size())
	assert.True(t, result.Contains(Tuple{"s1"}))
	assert.True(t, result.Contains(Tuple{"s2"}))
	assert.False(t, result.Contains(Tuple{"s3"}), "s3 stocks washers only")
	assert.Equal(t, "Supplies_DIV_Parts", result.Name())
}

func TestDivideInverseProperty(t *testing.T) {
	supplies, parts := suppliesFixture()

	result, err := Divide(supplies, parts)
	require.NoError(t, err)

	// Every x in the result combined with every tuple of the divisor must
	// appear in the dividend
	for _, x := range result.Tuples() {
		for _, y := range parts.Tuples() {
			combined := append(append(Tuple{}, x...), y...)
			assert.True(t, supplies.Contains(combined),
				"expected %v in Supplies", combined)
		}
	}
}

func TestDivideByEmptyDivisor(t *testing.T) {
	supplies, _ := suppliesFixture()
	empty := MustNewRelation("NoParts", []Attribute{"part"}, nil)

	// Vacuous superset: every supplier qualifies
	result, err := Divide(supplies, empty)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Size())
}

func TestDivideAttributeSubsetViolation(t *testing.T) {
	supplies, _ := suppliesFixture()
	prices := MustNewRelation("Prices",
		[]Attribute{"part", "price"},
		[]Tuple{{"bolt", 10}})

	_, err := Divide(supplies, prices)
	assert.ErrorIs(t, err, ErrAttributeSubset)
}

func TestDivideEmptyResultSchema(t *testing.T) {
	supplies, _ := suppliesFixture()
	everything := MustNewRelation("All",
		[]Attribute{"supplier", "part"},
		[]Tuple{{"s1", "bolt"}})

	_, err := Divide(supplies, everything)
	assert.ErrorIs(t, err, ErrEmptySchema)
}

package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cratetype "github.com/lgtm-migrator/crate-go"
	numeric "github.com/lgtm-migrator/crate-go/ext/shopspring-numeric"
)

func TestToDecimal(t *testing.T) {
	for _, tt := range []struct {
		value    any
		expected string
	}{
		{"123.45", "123.45"},
		{"-0.00000001", "-0.00000001"},
		{float64(2.5), "2.5"},
		{int64(42), "42"},
		{42, "42"},
	} {
		v, err := numeric.ToDecimal(tt.value)
		require.NoErrorf(t, err, "%v", tt.value)

		d, ok := v.(decimal.Decimal)
		require.True(t, ok)
		expected, err := decimal.NewFromString(tt.expected)
		require.NoError(t, err)
		assert.Truef(t, expected.Equal(d), "%v != %v", expected, d)
	}
}

func TestToDecimalNull(t *testing.T) {
	v, err := numeric.ToDecimal(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestToDecimalInvalid(t *testing.T) {
	_, err := numeric.ToDecimal("not a number")
	require.Error(t, err)

	_, err = numeric.ToDecimal(true)
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	c := cratetype.NewDefaultConverter()
	numeric.Register(c)

	v, err := c.Convert(cratetype.ScalarType(cratetype.Numeric), "123.45")
	require.NoError(t, err)

	d, ok := v.(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "123.45", d.String())
}

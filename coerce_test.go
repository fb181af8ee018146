package xjson

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceLiteralScenarios(t *testing.T) {
	assert.Equal(t, "01", Coerce("01"))
	assert.Equal(t, int64(1), Coerce("1"))
	assert.Equal(t, true, Coerce("True"))
	assert.Equal(t, nil, Coerce("null"))
	assert.Equal(t, -23.45, Coerce("-23.45"))
	assert.Equal(t, "-23x.45", Coerce("-23x.45"))
}

func TestCoerceBooleanCaseInsensitive(t *testing.T) {
	assert.Equal(t, true, Coerce("TRUE"))
	assert.Equal(t, false, Coerce("false"))
	assert.Equal(t, false, Coerce("FALSE"))
}

func TestCoerceNullCaseInsensitive(t *testing.T) {
	assert.Nil(t, Coerce("NULL"))
	assert.Nil(t, Coerce("Null"))
}

func TestCoerceRejectsLeadingZero(t *testing.T) {
	assert.Equal(t, "0123", Coerce("0123"))
	assert.Equal(t, "-0123", Coerce("-0123"))
	assert.Equal(t, 0.5, Coerce("0.5")) // single leading zero before '.' is fine
}

func TestCoerceIntegerPromotionLadder(t *testing.T) {
	assert.IsType(t, int64(0), Coerce("2147483647"))
	assert.IsType(t, int64(0), Coerce("9223372036854775807"))

	big1, ok := Coerce("99999999999999999999999999").(*big.Int)
	assert.True(t, ok)
	assert.Equal(t, "99999999999999999999999999", big1.String())
}

func TestCoerceFloatRejectsHexPlusWhitespaceAndNonFinite(t *testing.T) {
	assert.Equal(t, "0x1p0", Coerce("0x1p0"))
	assert.Equal(t, "+1.5", Coerce("+1.5"))
	assert.Equal(t, "1.5 ", Coerce("1.5 "))
	assert.Equal(t, "inf", Coerce("inf"))
	assert.Equal(t, "nan", Coerce("nan"))
}

func TestCoerceEmptyStringStaysString(t *testing.T) {
	assert.Equal(t, "", Coerce(""))
}

func TestCoerceKeepStrings(t *testing.T) {
	cfg := NewConfig(KeepStrings(true))
	assert.Equal(t, "1", coerceMaybe("1", cfg))
	assert.Equal(t, "true", coerceMaybe("true", cfg))
}

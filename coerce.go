package xjson

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Coerce applies the Primitive Coercer to a raw string: recognized
// booleans and "null" become their JSON equivalents, strict integer and
// floating syntax are promoted to numeric values, and anything else is
// returned unchanged as a string.
func Coerce(s string) Value {
	switch {
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	case strings.EqualFold(s, "null"):
		return nil
	}
	if v, ok := parseStrictInt(s); ok {
		return v
	}
	if v, ok := parseStrictFloat(s); ok {
		return v
	}
	return s
}

// coerceMaybe applies Coerce unless cfg.keepStrings disables it.
func coerceMaybe(s string, cfg *Config) Value {
	if cfg.keepStrings {
		return s
	}
	return Coerce(s)
}

// parseStrictInt recognizes an optional leading '-' followed by one or
// more decimal digits, with no other characters, rejecting a leading
// zero followed by more digits so "01" is preserved as a string. Values
// that fit in 64 bits (including the 32-bit range) are returned as int64;
// larger ones as *big.Int.
func parseStrictInt(s string) (Value, bool) {
	if s == "" {
		return nil, false
	}
	digits := s
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return nil, false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return nil, false
	}

	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return n, true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return bi, true
}

// parseStrictFloat recognizes standard floating-point syntax with an
// optional exponent, rejecting hex literals, leading '+', whitespace,
// and non-finite results, and applying the same leading-zero rule as
// parseStrictInt to the integer part preceding the decimal point or
// exponent.
func parseStrictFloat(s string) (Value, bool) {
	if s == "" {
		return nil, false
	}
	if strings.ContainsAny(s, " \t\n+xX") {
		return nil, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return nil, false
	}

	intPart := s
	if intPart[0] == '-' {
		intPart = intPart[1:]
	}
	for i, ch := range intPart {
		if ch == '.' || ch == 'e' || ch == 'E' {
			intPart = intPart[:i]
			break
		}
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

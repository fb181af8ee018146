package xjson

import "strconv"

// namedEntities holds the recognized lowercase-only named character
// references; any other named entity is preserved literally.
var namedEntities = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',
}

// tryDecodeEntity decodes the body of an entity reference (the text
// between & and ;, exclusive) to its resolved string. ok is false when
// body is not a recognized named or numeric reference, in which case the
// caller must preserve the original "&body;" text verbatim.
func tryDecodeEntity(body string) (string, bool) {
	if body == "" {
		return "", false
	}
	if r, ok := namedEntities[body]; ok {
		return string(r), true
	}
	if body[0] == '#' {
		return decodeNumericEntity(body[1:])
	}
	return "", false
}

func decodeNumericEntity(rest string) (string, bool) {
	if rest == "" {
		return "", false
	}
	var n int64
	var err error
	if rest[0] == 'x' || rest[0] == 'X' {
		if len(rest) < 2 {
			return "", false
		}
		n, err = strconv.ParseInt(rest[1:], 16, 64)
	} else {
		n, err = strconv.ParseInt(rest, 10, 64)
	}
	if err != nil {
		return "", false
	}
	return string(codePointToRune(n)), true
}

// codePointToRune maps a decoded numeric code point to the single scalar
// that should appear in output. Surrogate halves (D800..DFFF) and values
// outside the valid Unicode range are replaced by U+FFFD, since this
// codec does not perform surrogate-pair reassembly.
func codePointToRune(n int64) rune {
	if n < 0 || n > 0x10FFFF {
		return '�'
	}
	if n >= 0xD800 && n <= 0xDFFF {
		return '�'
	}
	return rune(n)
}

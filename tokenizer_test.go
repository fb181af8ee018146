package xjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer(s string) *tokenizer {
	return newTokenizer(newSource(strings.NewReader(s)))
}

func TestTokenizerStartTextEnd(t *testing.T) {
	tz := newTestTokenizer("<a>hi</a>")

	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokStart, tok.kind)
	assert.Equal(t, "a", tok.name)

	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokText, tok.kind)
	assert.Equal(t, "hi", tok.text)

	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokEnd, tok.kind)
	assert.Equal(t, "a", tok.name)

	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokEOF, tok.kind)
}

func TestTokenizerEmptyElementWithAttributes(t *testing.T) {
	tz := newTestTokenizer(`<b x="1" y='two'/>`)
	tok, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, tokEmpty, tok.kind)
	assert.Equal(t, "b", tok.name)
	require.Len(t, tok.attrs, 2)
	assert.Equal(t, attribute{Name: "x", Value: "1"}, tok.attrs[0])
	assert.Equal(t, attribute{Name: "y", Value: "two"}, tok.attrs[1])
}

func TestTokenizerAttributeWithoutValueDefaultsToName(t *testing.T) {
	tz := newTestTokenizer(`<b disabled>`)
	tok, err := tz.Next()
	require.NoError(t, err)
	require.Len(t, tok.attrs, 1)
	assert.Equal(t, attribute{Name: "disabled", Value: "disabled"}, tok.attrs[0])
}

func TestTokenizerEntityInText(t *testing.T) {
	tz := newTestTokenizer("A &#8364;33")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "A €33", tok.text)
}

func TestTokenizerEntityInAttribute(t *testing.T) {
	tz := newTestTokenizer(`<a b="x&amp;y">`)
	tok, err := tz.Next()
	require.NoError(t, err)
	require.Len(t, tok.attrs, 1)
	assert.Equal(t, "x&y", tok.attrs[0].Value)
}

func TestTokenizerCommentSkipped(t *testing.T) {
	tz := newTestTokenizer("<a><!-- comment -- with dashes -->hi</a>")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokStart, tok.kind)

	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokText, tok.kind)
	assert.Equal(t, "hi", tok.text)
}

func TestTokenizerProcessingInstructionSkipped(t *testing.T) {
	tz := newTestTokenizer(`<?xml version="1.0"?><a/>`)
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokEmpty, tok.kind)
	assert.Equal(t, "a", tok.name)
}

func TestTokenizerDoctypeWithInternalSubsetSkipped(t *testing.T) {
	tz := newTestTokenizer(`<!DOCTYPE root [ <!ELEMENT root (#PCDATA)> ]><root/>`)
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokEmpty, tok.kind)
	assert.Equal(t, "root", tok.name)
}

func TestTokenizerCData(t *testing.T) {
	tz := newTestTokenizer("<![CDATA[x<y]]>")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokCData, tok.kind)
	assert.Equal(t, "x<y", tok.text)
}

func TestTokenizerCDataWithEmbeddedBrackets(t *testing.T) {
	tz := newTestTokenizer("<![CDATA[a]]b]]>")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "a]]b", tok.text)
}

func TestTokenizerCDataEndingInBrackets(t *testing.T) {
	// content "]]" followed by the real "]]>" terminator.
	tz := newTestTokenizer("<![CDATA[]]]]>")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "]]", tok.text)
}

func TestTokenizerMisshapedTagAtSelfCloseSlash(t *testing.T) {
	tz := newTestTokenizer("<name/x>")
	_, err := tz.Next()
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, perr.Message, "Misshaped tag at")
	assert.Equal(t, 5, perr.Offset) // 0-based offset of '/' in "<name/x>"
	assert.Equal(t, 6, perr.Column) // 1-based column of '/'
}

func TestTokenizerMisplacedLT(t *testing.T) {
	tz := newTestTokenizer(`<a b="1<2">`)
	_, err := tz.Next()
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, perr.Message, "Misplaced '<' at")
}

func TestTokenizerExpectedCDATA(t *testing.T) {
	tz := newTestTokenizer("<![CDAT ")
	_, err := tz.Next()
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, perr.Message, "Expected 'CDATA[' at")
}

func TestTokenizerUnrecognizedBangIsMisshapedMetaTag(t *testing.T) {
	tz := newTestTokenizer("<!FOO>")
	_, err := tz.Next()
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Contains(t, perr.Message, "Misshaped meta tag at")
}

func TestTokenizerUnrecognizedEntityPreservedLiterally(t *testing.T) {
	tz := newTestTokenizer("A &unknown; B")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "A &unknown; B", tok.text)
}

package xjson

import "fmt"

// ParseError is a recoverable error raised by the Tokenizer or Projection
// Engine. It carries the exact templated message spec'd for acceptance
// testing, plus the position it occurred at.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return e.Message
}

// ArgumentError is raised for a null input or invalid configuration; it
// carries no position.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func errAt(template string, p Position) *ParseError {
	msg := fmt.Sprintf(template+" at %d [character %d line %d]", p.Offset, p.Col, p.Line)
	return &ParseError{Message: msg, Offset: p.Offset, Line: p.Line, Column: p.Col}
}

func errMisshapenTag(p Position) *ParseError {
	return errAt("Misshaped tag", p)
}

func errMisshapenMetaTag(p Position) *ParseError {
	return errAt("Misshaped meta tag", p)
}

func errMisplacedLT(p Position) *ParseError {
	return errAt("Misplaced '<'", p)
}

func errExpectedCDATA(p Position) *ParseError {
	return errAt("Expected 'CDATA['", p)
}

func errMaxNestingDepth(n int) *ParseError {
	return &ParseError{Message: fmt.Sprintf("Maximum nesting depth of %d reached", n)}
}

func errNullInput() *ArgumentError {
	return &ArgumentError{Message: "null input"}
}

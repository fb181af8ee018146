package main

import "errors"

// Sentinel errors returned by the command layer, wrapped with context via
// github.com/pkg/errors.Wrap at the call site. main's exit code does not
// distinguish between them: any error other than an *xjson.ParseError
// exits with 1.
var (
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
	ErrInvalidRoot   = errors.New("invalid root flag")
	ErrInvalidIndent = errors.New("invalid indent flag")
	ErrInvalidConfig = errors.New("invalid config file")
)

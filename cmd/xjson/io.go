package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// readInput reads path, or stdin when path is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(ErrReadInput, "stdin: "+err.Error())
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrReadInput, "%s: %v", path, err)
	}
	return data, nil
}

// writeOutput writes data to path, or stdout when path is "-" or empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return errors.Wrap(ErrWriteOutput, "stdout: "+err.Error())
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(ErrWriteOutput, "%s: %v", path, err)
	}
	return nil
}

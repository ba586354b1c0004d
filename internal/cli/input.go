// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tmatrix/matrix"
)

// document is the YAML input layout:
//
//	a:
//	  - [2, 6, 5]
//	  - [-1, 9, 8]
//	b:
//	  - [1, 0]
//
// A matrix printed with --output yaml ("result:") is accepted in place of a,
// so commands can be piped into each other.
type document[T matrix.Number] struct {
	A      [][]T `yaml:"a"`
	B      [][]T `yaml:"b"`
	Result [][]T `yaml:"result"`
}

// readDocument decodes path ("-" for stdin) into a document of T.
// Unknown keys are rejected so typos do not silently drop a matrix.
func readDocument[T matrix.Number](path string, stdin io.Reader) (document[T], error) {
	var doc document[T]
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return doc, fmt.Errorf("%w: %w", ErrBadInput, err)
		}
		defer f.Close()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, fmt.Errorf("%w: %s is empty", ErrBadInput, path)
		}
		return doc, fmt.Errorf("%w: %s: %w", ErrBadInput, path, err)
	}
	if doc.Result != nil {
		if doc.A != nil {
			return doc, fmt.Errorf("%w: %s: both a and result are set", ErrBadInput, path)
		}
		doc.A, doc.Result = doc.Result, nil
	}

	return doc, nil
}

// operand converts one named matrix of the document.
func operand[T matrix.Number](name string, rows [][]T) (*matrix.Dense[T], error) {
	if rows == nil {
		return nil, fmt.Errorf("%w: matrix %q is missing", ErrBadInput, name)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: matrix %q: %w", ErrBadInput, name, err)
	}

	return m, nil
}

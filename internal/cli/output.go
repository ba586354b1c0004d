// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tmatrix/matrix"
)

// result is the YAML output envelope.
type result[V any] struct {
	Result V `yaml:"result"`
}

// writeMatrix prints m as bracketed rows (text) or as a YAML list of rows.
func writeMatrix[T matrix.Number](w io.Writer, format string, m *matrix.Dense[T]) error {
	if format == outputYAML {
		return writeYAML(w, result[[][]T]{Result: m.Matrix()})
	}
	_, err := io.WriteString(w, m.String())

	return err
}

// writeScalar prints v on its own line (text) or as YAML.
func writeScalar[T matrix.Number](w io.Writer, format string, v T) error {
	if format == outputYAML {
		return writeYAML(w, result[T]{Result: v})
	}
	_, err := fmt.Fprintln(w, v)

	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

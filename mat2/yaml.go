// SPDX-License-Identifier: MIT
// Package mat2: YAML codec.
//
// A Matrix is encoded as a sequence of two flow sequences of scalar strings:
//
//	- [10, 5+2i]
//	- [3+4i, 15]
//
// Decoding accepts plain numbers as well as complex literals and rejects any
// other shape with ErrBadShape.

package mat2

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler.
func (m Matrix) MarshalYAML() (interface{}, error) {
	rows := m.Rows()
	out := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < Dim; i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for j := 0; j < Dim; j++ {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: FormatScalar(rows[i][j]),
			})
		}
		out.Content = append(out.Content, row)
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != Dim {
		return mat2Errorf(opUnmarshal, ErrBadShape)
	}
	rows := make([][]complex128, 0, Dim)
	for _, rowNode := range value.Content {
		if rowNode.Kind != yaml.SequenceNode || len(rowNode.Content) != Dim {
			return mat2Errorf(opUnmarshal, ErrBadShape)
		}
		row := make([]complex128, 0, Dim)
		for _, cell := range rowNode.Content {
			if cell.Kind != yaml.ScalarNode {
				return mat2Errorf(opUnmarshal, ErrBadShape)
			}
			c, err := ParseScalar(cell.Value)
			if err != nil {
				return mat2Errorf(opUnmarshal, err)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}

	parsed, err := FromRows(rows)
	if err != nil {
		return mat2Errorf(opUnmarshal, err)
	}
	*m = parsed

	return nil
}

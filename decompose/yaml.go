// SPDX-License-Identifier: MIT
// Package decompose: YAML codec.
//
// Coefficients are encoded as a mapping of complex literals:
//
//	l0: 12.5
//	lx: 4+3i
//	ly: 1+1i
//	lz: -2.5
//
// Missing keys decode as zero; unknown or repeated keys are rejected.

package decompose

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pauli/mat2"
)

var coefficientKeys = [4]string{"l0", "lx", "ly", "lz"}

// MarshalYAML implements yaml.Marshaler.
func (c Coefficients) MarshalYAML() (interface{}, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}
	for i, v := range c.Array() {
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: coefficientKeys[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: mat2.FormatScalar(v)},
		)
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coefficients) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return decomposeErrorf(opUnmarshal, ErrBadCoefficients)
	}
	var (
		arr  [4]complex128
		seen [4]bool
	)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return decomposeErrorf(opUnmarshal, ErrBadCoefficients)
		}
		slot := keySlot(key.Value)
		if slot < 0 || seen[slot] {
			return decomposeErrorf(opUnmarshal, ErrBadCoefficients)
		}
		seen[slot] = true
		v, err := mat2.ParseScalar(val.Value)
		if err != nil {
			return decomposeErrorf(opUnmarshal, err)
		}
		arr[slot] = v
	}
	*c = FromArray(arr)

	return nil
}

func keySlot(k string) int {
	for i, name := range coefficientKeys {
		if k == name {
			return i
		}
	}

	return -1
}

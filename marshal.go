package maybeutf8

import (
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/maybeutf8/internal/rawbytes"
)

// MarshalText implements encoding.TextMarshaler. It fails with an
// *InvalidEncodingError when the Bytes variant does not hold valid
// UTF-8; text output is never silently substituted outside String.
func (v Buf) MarshalText() ([]byte, error) {
	s, err := v.TryString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is UTF-8
// by contract, so the result is the Text variant.
func (v *Buf) UnmarshalText(text []byte) error {
	*v = FromString(string(text))
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. Total: the byte
// representation is emitted regardless of variant. The round trip through
// UnmarshalBinary lands in the Bytes variant, which compares equal to
// the original since equality ignores the tag.
func (v Buf) MarshalBinary() ([]byte, error) {
	return v.AppendTo(nil), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data is
// copied, per the interface contract, and wrapped without validation.
func (v *Buf) UnmarshalBinary(data []byte) error {
	*v = FromBytes(rawbytes.Clone(data))
	return nil
}

// MarshalYAML implements yaml.Marshaler. The Text variant is emitted as
// a plain string node, the Bytes variant as a !!binary node, so an
// uncertain-encoding value survives a YAML round trip with both content
// and variant intact.
func (v Buf) MarshalYAML() (any, error) {
	if !v.bin {
		return v.s, nil
	}
	return v.b, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, reversing MarshalYAML:
// !!binary nodes become the Bytes variant, string nodes the Text variant.
func (v *Buf) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!binary" {
		var b []byte
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = FromBytes(b)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*v = FromString(s)
	return nil
}

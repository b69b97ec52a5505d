package awsid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, rendering the canonical string
// form. Marshaling the zero value is an error.
func (id ID[K]) MarshalYAML() (any, error) {
	if id.IsZero() {
		var k K
		return nil, fmt.Errorf("awsid: cannot encode zero %s value", k.typeName())
	}
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, running the same validation as
// the Parse functions and surfacing its error through the decoder.
func (id *ID[K]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := parse[K](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. It fails closed for values outside
// the enumeration.
func (r Region) MarshalYAML() (any, error) {
	if !r.IsValid() {
		return nil, &UnknownRegionError{Input: string(r)}
	}
	return string(r), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, running the same validation as
// ParseRegion.
func (r *Region) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

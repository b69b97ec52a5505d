package awsid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer, encoding the identifier as its canonical
// string for a text or varchar column. Encoding the zero value is an error.
func (id ID[K]) Value() (driver.Value, error) {
	if id.IsZero() {
		var k K
		return nil, fmt.Errorf("awsid: cannot encode zero %s value", k.typeName())
	}
	return id.String(), nil
}

// Scan implements sql.Scanner, decoding a text or varchar column by running
// the same validation as the Parse functions.
func (id *ID[K]) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		var k K
		return fmt.Errorf("awsid: cannot scan %T into %s", src, k.typeName())
	}
	parsed, err := parse[K](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer, encoding the region code as text.
// Encoding a value outside the enumeration is an error.
func (r Region) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, &UnknownRegionError{Input: string(r)}
	}
	return string(r), nil
}

// Scan implements sql.Scanner, decoding a text column by running the same
// validation as ParseRegion.
func (r *Region) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("awsid: cannot scan %T into Region", src)
	}
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

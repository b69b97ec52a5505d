package awsid

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Valid lengths for the unique part of a resource ID. Resources created
// before January 2016 carry 8-character unique parts; everything newer
// carries 17. See
// https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/resource-ids.html
const (
	ShortSuffixLength = 8
	LongSuffixLength  = 17
)

// kind describes one resource ID type: its required prefix and the exported
// type name used in diagnostics. Each resource type in resources.go provides
// a zero-size implementation.
type kind interface {
	prefix() string
	typeName() string
}

// uniquePart is the fixed-size inline storage for the alphanumeric part of a
// resource ID. n is either 8 or 17; bytes past n stay zero so that struct
// equality is structural.
type uniquePart struct {
	n   uint8
	buf [LongSuffixLength]byte
}

func (p uniquePart) bytes() []byte {
	return p.buf[:p.n]
}

// ID is a validated AWS resource identifier in the general format: a
// resource-specific prefix followed by an 8 or 17 character ASCII
// alphanumeric unique part.
//
// The type parameter pins the resource type at compile time, so identifiers
// of different resources are distinct, non-interchangeable Go types. Use the
// exported aliases (AMIID, InstanceID, VolumeID, ...) and their Parse
// functions rather than naming ID directly.
//
// IDs are immutable, comparable with ==, and usable as map keys. The zero
// value is not a valid identifier; obtain values through the Parse functions
// or the unmarshaling hooks.
type ID[K kind] struct {
	part uniquePart
}

// parse validates s against the prefix, alphabet, and length rules for K.
// The alphabet check deliberately runs before the length check: an input
// that breaks both rules reports the bad character, not the bad length.
func parse[K kind](s string) (ID[K], error) {
	var k K
	prefix := k.prefix()
	if !strings.HasPrefix(s, prefix) {
		return ID[K]{}, &ResourceIDError{
			Type:   k.typeName(),
			Input:  s,
			Detail: &PrefixError{Expected: prefix},
		}
	}
	suffix := s[len(prefix):]
	for i := 0; i < len(suffix); i++ {
		if !isASCIIAlphanumeric(suffix[i]) {
			return ID[K]{}, &ResourceIDError{
				Type:   k.typeName(),
				Input:  s,
				Detail: ErrNonAlphanumeric,
			}
		}
	}
	if len(suffix) != ShortSuffixLength && len(suffix) != LongSuffixLength {
		return ID[K]{}, &ResourceIDError{
			Type:   k.typeName(),
			Input:  s,
			Detail: &LengthError{Length: len(suffix)},
		}
	}

	var id ID[K]
	id.part.n = uint8(len(suffix))
	copy(id.part.buf[:], suffix)
	return id, nil
}

func isASCIIAlphanumeric(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// String returns the canonical text form: the prefix followed by the unique
// part. For every value produced by a Parse function, String returns the
// exact input that produced it.
func (id ID[K]) String() string {
	var k K
	return k.prefix() + string(id.part.bytes())
}

// Suffix returns the unique part of the identifier, without the prefix.
func (id ID[K]) Suffix() string {
	return string(id.part.bytes())
}

// IsZero reports whether id is the zero value, which is not a valid
// identifier.
func (id ID[K]) IsZero() bool {
	return id.part.n == 0
}

// Compare orders identifiers of the same resource type: 8-character unique
// parts sort before 17-character ones, then bytewise. It returns -1, 0, or
// +1 in the manner of bytes.Compare.
func (id ID[K]) Compare(other ID[K]) int {
	if id.part.n != other.part.n {
		if id.part.n < other.part.n {
			return -1
		}
		return 1
	}
	return bytes.Compare(id.part.bytes(), other.part.bytes())
}

// MarshalText implements encoding.TextMarshaler, rendering the canonical
// string form. encoding/json picks this up automatically. Marshaling the
// zero value is an error.
func (id ID[K]) MarshalText() ([]byte, error) {
	if id.IsZero() {
		var k K
		return nil, fmt.Errorf("awsid: cannot encode zero %s value", k.typeName())
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, running the same
// validation as the Parse functions.
func (id *ID[K]) UnmarshalText(text []byte) error {
	parsed, err := parse[K](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// GoString implements fmt.GoStringer so that %#v diagnostics carry the
// resource type name, e.g. AMIID("ami-1234abcd").
func (id ID[K]) GoString() string {
	var k K
	return k.typeName() + "(" + strconv.Quote(id.String()) + ")"
}

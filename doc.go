// Package awsid provides strongly typed, validated AWS resource identifiers
// and region codes.
//
// The package models the two identifier families that appear throughout AWS
// APIs, infrastructure inventories, and audit trails:
//
//   - Resource IDs: a short resource-specific prefix followed by an 8 or 17
//     character alphanumeric unique part (for example "ami-1234abcd" or
//     "i-1234567890abcdef0")
//   - Region codes: the closed set of lowercase hyphenated region names
//     (for example "us-east-1")
//
// Every identifier is validated at construction and immutable afterwards.
// There is no way to obtain a partially valid value: the Parse functions
// either return a fully checked identifier or a structured error describing
// exactly which rule the input broke.
//
// # Resource IDs
//
// Each resource type gets its own nominal Go type, so an instance ID can
// never be passed where a volume ID is expected:
//
//	id, err := awsid.ParseInstanceID("i-1234567890abcdef0")
//	if err != nil {
//		// err explains the failing rule: prefix, alphabet, or length
//	}
//	fmt.Println(id)          // i-1234567890abcdef0
//	fmt.Println(id.Suffix()) // 1234567890abcdef0
//
// Resource ID values are comparable and usable as map keys, and order
// deterministically: 8-character IDs sort before 17-character ones, then
// bytewise.
//
// # Regions
//
// Region is a closed enumeration of the 29 known region codes. Parsing is an
// exact match, with no case folding or trimming:
//
//	region, err := awsid.ParseRegion("eu-central-1")
//	if err != nil {
//		// "Unknown region: ..."
//	}
//	fmt.Println(region.Description()) // Europe (Frankfurt)
//
// # Error Handling
//
// Failed parses return structured error types for robust error handling:
//
//	_, err := awsid.ParseAMIID("ami-1234567!")
//	var rerr *awsid.ResourceIDError
//	if errors.As(err, &rerr) {
//		// rerr.Type, rerr.Input, rerr.Detail
//	}
//	if errors.Is(err, awsid.ErrNonAlphanumeric) {
//		// the unique part contained a bad character
//	}
//
// # Serialization
//
// All identifier types marshal to and from their canonical string form for
// JSON (via encoding.TextMarshaler), YAML (gopkg.in/yaml.v3), and SQL text
// columns (database/sql driver.Valuer and sql.Scanner). Deserialization runs
// the same validation as the Parse functions and reports failures through
// each framework's error channel.
//
// # Thread Safety
//
// All operations are pure functions over immutable values and are safe for
// concurrent use without synchronization.
package awsid

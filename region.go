package awsid

import "sort"

// Region is an AWS region code, such as "us-east-1". It is a closed
// enumeration: exactly the 29 constants below are valid, and ParseRegion
// rejects everything else, including case and whitespace variants. The zero
// value is not a valid region.
type Region string

// Region constants enumerate every known region code.
const (
	// RegionAFSouth1 is Africa (Cape Town).
	RegionAFSouth1 Region = "af-south-1"

	// RegionAPEast1 is Asia Pacific (Hong Kong).
	RegionAPEast1 Region = "ap-east-1"

	// RegionAPNortheast1 is Asia Pacific (Tokyo).
	RegionAPNortheast1 Region = "ap-northeast-1"

	// RegionAPNortheast2 is Asia Pacific (Seoul).
	RegionAPNortheast2 Region = "ap-northeast-2"

	// RegionAPNortheast3 is Asia Pacific (Osaka).
	RegionAPNortheast3 Region = "ap-northeast-3"

	// RegionAPSouth1 is Asia Pacific (Mumbai).
	RegionAPSouth1 Region = "ap-south-1"

	// RegionAPSouth2 is Asia Pacific (Hyderabad).
	RegionAPSouth2 Region = "ap-south-2"

	// RegionAPSoutheast1 is Asia Pacific (Singapore).
	RegionAPSoutheast1 Region = "ap-southeast-1"

	// RegionAPSoutheast2 is Asia Pacific (Sydney).
	RegionAPSoutheast2 Region = "ap-southeast-2"

	// RegionAPSoutheast3 is Asia Pacific (Jakarta).
	RegionAPSoutheast3 Region = "ap-southeast-3"

	// RegionAPSoutheast4 is Asia Pacific (Melbourne).
	RegionAPSoutheast4 Region = "ap-southeast-4"

	// RegionCACentral1 is Canada (Central).
	RegionCACentral1 Region = "ca-central-1"

	// RegionCAWest1 is Canada West (Calgary).
	RegionCAWest1 Region = "ca-west-1"

	// RegionEUCentral1 is Europe (Frankfurt).
	RegionEUCentral1 Region = "eu-central-1"

	// RegionEUCentral2 is Europe (Zurich).
	RegionEUCentral2 Region = "eu-central-2"

	// RegionEUNorth1 is Europe (Stockholm).
	RegionEUNorth1 Region = "eu-north-1"

	// RegionEUSouth1 is Europe (Milan).
	RegionEUSouth1 Region = "eu-south-1"

	// RegionEUSouth2 is Europe (Spain).
	RegionEUSouth2 Region = "eu-south-2"

	// RegionEUWest1 is Europe (Ireland).
	RegionEUWest1 Region = "eu-west-1"

	// RegionEUWest2 is Europe (London).
	RegionEUWest2 Region = "eu-west-2"

	// RegionEUWest3 is Europe (Paris).
	RegionEUWest3 Region = "eu-west-3"

	// RegionILCentral1 is Israel (Tel Aviv).
	RegionILCentral1 Region = "il-central-1"

	// RegionMECentral1 is Middle East (UAE).
	RegionMECentral1 Region = "me-central-1"

	// RegionMESouth1 is Middle East (Bahrain).
	RegionMESouth1 Region = "me-south-1"

	// RegionSAEast1 is South America (São Paulo).
	RegionSAEast1 Region = "sa-east-1"

	// RegionUSEast1 is US East (N. Virginia).
	RegionUSEast1 Region = "us-east-1"

	// RegionUSEast2 is US East (Ohio).
	RegionUSEast2 Region = "us-east-2"

	// RegionUSWest1 is US West (N. California).
	RegionUSWest1 Region = "us-west-1"

	// RegionUSWest2 is US West (Oregon).
	RegionUSWest2 Region = "us-west-2"
)

// regionDescriptions maps every valid region to its human-readable location.
// It doubles as the membership table for IsValid and ParseRegion.
var regionDescriptions = map[Region]string{
	RegionAFSouth1:     "Africa (Cape Town)",
	RegionAPEast1:      "Asia Pacific (Hong Kong)",
	RegionAPNortheast1: "Asia Pacific (Tokyo)",
	RegionAPNortheast2: "Asia Pacific (Seoul)",
	RegionAPNortheast3: "Asia Pacific (Osaka)",
	RegionAPSouth1:     "Asia Pacific (Mumbai)",
	RegionAPSouth2:     "Asia Pacific (Hyderabad)",
	RegionAPSoutheast1: "Asia Pacific (Singapore)",
	RegionAPSoutheast2: "Asia Pacific (Sydney)",
	RegionAPSoutheast3: "Asia Pacific (Jakarta)",
	RegionAPSoutheast4: "Asia Pacific (Melbourne)",
	RegionCACentral1:   "Canada (Central)",
	RegionCAWest1:      "Canada West (Calgary)",
	RegionEUCentral1:   "Europe (Frankfurt)",
	RegionEUCentral2:   "Europe (Zurich)",
	RegionEUNorth1:     "Europe (Stockholm)",
	RegionEUSouth1:     "Europe (Milan)",
	RegionEUSouth2:     "Europe (Spain)",
	RegionEUWest1:      "Europe (Ireland)",
	RegionEUWest2:      "Europe (London)",
	RegionEUWest3:      "Europe (Paris)",
	RegionILCentral1:   "Israel (Tel Aviv)",
	RegionMECentral1:   "Middle East (UAE)",
	RegionMESouth1:     "Middle East (Bahrain)",
	RegionSAEast1:      "South America (São Paulo)",
	RegionUSEast1:      "US East (N. Virginia)",
	RegionUSEast2:      "US East (Ohio)",
	RegionUSWest1:      "US West (N. California)",
	RegionUSWest2:      "US West (Oregon)",
}

// ParseRegion validates s as a region code. The match is exact: no case
// folding, no whitespace trimming, no prefix matching.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.IsValid() {
		return "", &UnknownRegionError{Input: s}
	}
	return r, nil
}

// Regions returns all valid region codes in lexicographic order.
func Regions() []Region {
	all := make([]Region, 0, len(regionDescriptions))
	for r := range regionDescriptions {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// String returns the region code, e.g. "us-east-1".
func (r Region) String() string {
	return string(r)
}

// IsValid returns true if the region is one of the known codes.
func (r Region) IsValid() bool {
	_, ok := regionDescriptions[r]
	return ok
}

// Description returns the human-readable location of the region, e.g.
// "US East (N. Virginia)" for RegionUSEast1.
func (r Region) Description() string {
	if desc, ok := regionDescriptions[r]; ok {
		return desc
	}
	return "Unknown region"
}

// MarshalText implements encoding.TextMarshaler. It fails closed for values
// outside the enumeration, including the zero value.
func (r Region) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, &UnknownRegionError{Input: string(r)}
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, running the same
// validation as ParseRegion.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

package awsid

import (
	"errors"
	"testing"
)

func TestResourceIDError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrong prefix",
			err: &ResourceIDError{
				Type:   "AMIID",
				Input:  "amx-12345678",
				Detail: &PrefixError{Expected: "ami-"},
			},
			want: `failed to initialize AMIID from "amx-12345678": incorrect prefix, expected "ami-"`,
		},
		{
			name: "bad length",
			err: &ResourceIDError{
				Type:   "VolumeID",
				Input:  "vol-1234567",
				Detail: &LengthError{Length: 7},
			},
			want: `failed to initialize VolumeID from "vol-1234567": the unique part must be 8 or 17, not 7 characters long`,
		},
		{
			name: "non alphanumeric",
			err: &ResourceIDError{
				Type:   "SnapshotID",
				Input:  "snap-1234567!",
				Detail: ErrNonAlphanumeric,
			},
			want: `failed to initialize SnapshotID from "snap-1234567!": the unique part contains non ascii alphanumeric characters`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResourceIDError_Unwrap(t *testing.T) {
	err := &ResourceIDError{
		Type:   "AMIID",
		Input:  "ami-1234567!",
		Detail: ErrNonAlphanumeric,
	}

	if !errors.Is(err, ErrNonAlphanumeric) {
		t.Error("errors.Is(err, ErrNonAlphanumeric) = false, want true")
	}

	pErr := &ResourceIDError{
		Type:   "AMIID",
		Input:  "amx-12345678",
		Detail: &PrefixError{Expected: "ami-"},
	}
	var detail *PrefixError
	if !errors.As(pErr, &detail) {
		t.Fatal("errors.As failed to extract *PrefixError")
	}
	if detail.Expected != "ami-" {
		t.Errorf("Expected = %q, want %q", detail.Expected, "ami-")
	}
}

func TestResourceIDError_FromParse(t *testing.T) {
	_, err := ParseSecurityGroupID("sg-!!!")
	var rerr *ResourceIDError
	if !errors.As(err, &rerr) {
		t.Fatalf("error %v is not a *ResourceIDError", err)
	}
	if rerr.Type != "SecurityGroupID" {
		t.Errorf("Type = %q, want %q", rerr.Type, "SecurityGroupID")
	}
	if rerr.Input != "sg-!!!" {
		t.Errorf("Input = %q, want %q", rerr.Input, "sg-!!!")
	}
}

func TestUnknownRegionError_Message(t *testing.T) {
	err := &UnknownRegionError{Input: "us-north-1"}
	if got := err.Error(); got != "Unknown region: us-north-1" {
		t.Errorf("Error() = %q, want %q", got, "Unknown region: us-north-1")
	}
}

package awsid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type deployment struct {
	Instance InstanceID      `yaml:"instance"`
	Image    AMIID           `yaml:"image"`
	Volume   VolumeID        `yaml:"volume"`
	Subnet   SubnetID        `yaml:"subnet"`
	Group    SecurityGroupID `yaml:"group"`
	Region   Region          `yaml:"region"`
}

func TestYAML_RoundTrip(t *testing.T) {
	instance, err := ParseInstanceID("i-1234567890abcdef0")
	require.NoError(t, err)
	image, err := ParseAMIID("ami-1234abcd")
	require.NoError(t, err)
	volume, err := ParseVolumeID("vol-0a1b2c3d")
	require.NoError(t, err)
	subnet, err := ParseSubnetID("subnet-deadbeef")
	require.NoError(t, err)
	group, err := ParseSecurityGroupID("sg-12345678")
	require.NoError(t, err)

	in := deployment{
		Instance: instance,
		Image:    image,
		Volume:   volume,
		Subnet:   subnet,
		Group:    group,
		Region:   RegionAPNortheast1,
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "instance: i-1234567890abcdef0")
	assert.Contains(t, string(data), "region: ap-northeast-1")

	var out deployment
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML_DecodeRejectsInvalid(t *testing.T) {
	var out deployment
	err := yaml.Unmarshal([]byte("image: ami-1234567\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the unique part must be 8 or 17, not 7 characters long")

	err = yaml.Unmarshal([]byte("region: us-north-1\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown region: us-north-1")
}

func TestYAML_EncodeRejectsInvalidRegion(t *testing.T) {
	_, err := yaml.Marshal(struct {
		Region Region `yaml:"region"`
	}{Region: Region("moon-base-1")})
	assert.Error(t, err)
}

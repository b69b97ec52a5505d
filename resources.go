package awsid

// One entry per resource type whose identifiers follow the general
// prefix + unique part format. Each type is a distinct instantiation of ID,
// so values of different resource types never mix, and each gets a Parse
// function as its only constructor.

type networkACLKind struct{}

func (networkACLKind) prefix() string   { return "acl-" }
func (networkACLKind) typeName() string { return "NetworkACLID" }

// NetworkACLID is a network ACL (Access Control List) ID, e.g. "acl-1234abcd".
type NetworkACLID = ID[networkACLKind]

// ParseNetworkACLID validates s as a network ACL ID.
func ParseNetworkACLID(s string) (NetworkACLID, error) { return parse[networkACLKind](s) }

type amiKind struct{}

func (amiKind) prefix() string   { return "ami-" }
func (amiKind) typeName() string { return "AMIID" }

// AMIID is an AMI (Amazon Machine Image) ID, e.g. "ami-1234abcd".
type AMIID = ID[amiKind]

// ParseAMIID validates s as an AMI ID.
func ParseAMIID(s string) (AMIID, error) { return parse[amiKind](s) }

type customerGatewayKind struct{}

func (customerGatewayKind) prefix() string   { return "cgw-" }
func (customerGatewayKind) typeName() string { return "CustomerGatewayID" }

// CustomerGatewayID is a customer gateway ID, e.g. "cgw-1234abcd".
type CustomerGatewayID = ID[customerGatewayKind]

// ParseCustomerGatewayID validates s as a customer gateway ID.
func ParseCustomerGatewayID(s string) (CustomerGatewayID, error) {
	return parse[customerGatewayKind](s)
}

type elasticIPAllocationKind struct{}

func (elasticIPAllocationKind) prefix() string   { return "eipalloc-" }
func (elasticIPAllocationKind) typeName() string { return "ElasticIPAllocationID" }

// ElasticIPAllocationID is an Elastic IP allocation ID, e.g. "eipalloc-1234abcd".
type ElasticIPAllocationID = ID[elasticIPAllocationKind]

// ParseElasticIPAllocationID validates s as an Elastic IP allocation ID.
func ParseElasticIPAllocationID(s string) (ElasticIPAllocationID, error) {
	return parse[elasticIPAllocationKind](s)
}

type fileSystemKind struct{}

func (fileSystemKind) prefix() string   { return "fs-" }
func (fileSystemKind) typeName() string { return "FileSystemID" }

// FileSystemID is an EFS (Elastic File System) ID, e.g. "fs-1234abcd".
type FileSystemID = ID[fileSystemKind]

// ParseFileSystemID validates s as an EFS file system ID.
func ParseFileSystemID(s string) (FileSystemID, error) { return parse[fileSystemKind](s) }

type mountTargetKind struct{}

func (mountTargetKind) prefix() string   { return "fsmt-" }
func (mountTargetKind) typeName() string { return "MountTargetID" }

// MountTargetID is an EFS mount target ID, e.g. "fsmt-1234abcd".
type MountTargetID = ID[mountTargetKind]

// ParseMountTargetID validates s as an EFS mount target ID.
func ParseMountTargetID(s string) (MountTargetID, error) { return parse[mountTargetKind](s) }

type stackKind struct{}

func (stackKind) prefix() string   { return "stack-" }
func (stackKind) typeName() string { return "StackID" }

// StackID is a CloudFormation stack ID, e.g. "stack-1234abcd".
type StackID = ID[stackKind]

// ParseStackID validates s as a CloudFormation stack ID.
func ParseStackID(s string) (StackID, error) { return parse[stackKind](s) }

type environmentKind struct{}

func (environmentKind) prefix() string   { return "e-" }
func (environmentKind) typeName() string { return "EnvironmentID" }

// EnvironmentID is an Elastic Beanstalk environment ID, e.g. "e-1234abcd".
type EnvironmentID = ID[environmentKind]

// ParseEnvironmentID validates s as an Elastic Beanstalk environment ID.
func ParseEnvironmentID(s string) (EnvironmentID, error) { return parse[environmentKind](s) }

type instanceKind struct{}

func (instanceKind) prefix() string   { return "i-" }
func (instanceKind) typeName() string { return "InstanceID" }

// InstanceID is an EC2 instance ID, e.g. "i-1234abcd" or
// "i-1234567890abcdef0".
type InstanceID = ID[instanceKind]

// ParseInstanceID validates s as an EC2 instance ID.
func ParseInstanceID(s string) (InstanceID, error) { return parse[instanceKind](s) }

type internetGatewayKind struct{}

func (internetGatewayKind) prefix() string   { return "igw-" }
func (internetGatewayKind) typeName() string { return "InternetGatewayID" }

// InternetGatewayID is an internet gateway ID, e.g. "igw-1234abcd".
type InternetGatewayID = ID[internetGatewayKind]

// ParseInternetGatewayID validates s as an internet gateway ID.
func ParseInternetGatewayID(s string) (InternetGatewayID, error) {
	return parse[internetGatewayKind](s)
}

type keyPairKind struct{}

func (keyPairKind) prefix() string   { return "key-" }
func (keyPairKind) typeName() string { return "KeyPairID" }

// KeyPairID is a key pair ID, e.g. "key-1234abcd".
type KeyPairID = ID[keyPairKind]

// ParseKeyPairID validates s as a key pair ID.
func ParseKeyPairID(s string) (KeyPairID, error) { return parse[keyPairKind](s) }

type loadBalancerKind struct{}

func (loadBalancerKind) prefix() string   { return "elbv2-" }
func (loadBalancerKind) typeName() string { return "LoadBalancerID" }

// LoadBalancerID is an Elastic Load Balancer (v2) ID, e.g. "elbv2-1234abcd".
type LoadBalancerID = ID[loadBalancerKind]

// ParseLoadBalancerID validates s as a load balancer ID.
func ParseLoadBalancerID(s string) (LoadBalancerID, error) { return parse[loadBalancerKind](s) }

type natGatewayKind struct{}

func (natGatewayKind) prefix() string   { return "nat-" }
func (natGatewayKind) typeName() string { return "NATGatewayID" }

// NATGatewayID is a NAT gateway ID, e.g. "nat-1234abcd".
type NATGatewayID = ID[natGatewayKind]

// ParseNATGatewayID validates s as a NAT gateway ID.
func ParseNATGatewayID(s string) (NATGatewayID, error) { return parse[natGatewayKind](s) }

type networkInterfaceKind struct{}

func (networkInterfaceKind) prefix() string   { return "eni-" }
func (networkInterfaceKind) typeName() string { return "NetworkInterfaceID" }

// NetworkInterfaceID is an elastic network interface ID, e.g. "eni-1234abcd".
type NetworkInterfaceID = ID[networkInterfaceKind]

// ParseNetworkInterfaceID validates s as a network interface ID.
func ParseNetworkInterfaceID(s string) (NetworkInterfaceID, error) {
	return parse[networkInterfaceKind](s)
}

type placementGroupKind struct{}

func (placementGroupKind) prefix() string   { return "pg-" }
func (placementGroupKind) typeName() string { return "PlacementGroupID" }

// PlacementGroupID is a placement group ID, e.g. "pg-1234abcd".
type PlacementGroupID = ID[placementGroupKind]

// ParsePlacementGroupID validates s as a placement group ID.
func ParsePlacementGroupID(s string) (PlacementGroupID, error) {
	return parse[placementGroupKind](s)
}

type dbInstanceKind struct{}

func (dbInstanceKind) prefix() string   { return "db-" }
func (dbInstanceKind) typeName() string { return "DBInstanceID" }

// DBInstanceID is an RDS instance resource ID, e.g. "db-1234abcd".
type DBInstanceID = ID[dbInstanceKind]

// ParseDBInstanceID validates s as an RDS instance resource ID.
func ParseDBInstanceID(s string) (DBInstanceID, error) { return parse[dbInstanceKind](s) }

type redshiftClusterKind struct{}

func (redshiftClusterKind) prefix() string   { return "redshift-" }
func (redshiftClusterKind) typeName() string { return "RedshiftClusterID" }

// RedshiftClusterID is a Redshift cluster ID, e.g. "redshift-1234abcd".
type RedshiftClusterID = ID[redshiftClusterKind]

// ParseRedshiftClusterID validates s as a Redshift cluster ID.
func ParseRedshiftClusterID(s string) (RedshiftClusterID, error) {
	return parse[redshiftClusterKind](s)
}

type routeTableKind struct{}

func (routeTableKind) prefix() string   { return "rtb-" }
func (routeTableKind) typeName() string { return "RouteTableID" }

// RouteTableID is a route table ID, e.g. "rtb-1234abcd".
type RouteTableID = ID[routeTableKind]

// ParseRouteTableID validates s as a route table ID.
func ParseRouteTableID(s string) (RouteTableID, error) { return parse[routeTableKind](s) }

type securityGroupKind struct{}

func (securityGroupKind) prefix() string   { return "sg-" }
func (securityGroupKind) typeName() string { return "SecurityGroupID" }

// SecurityGroupID is a security group ID, e.g. "sg-1234abcd".
type SecurityGroupID = ID[securityGroupKind]

// ParseSecurityGroupID validates s as a security group ID.
func ParseSecurityGroupID(s string) (SecurityGroupID, error) { return parse[securityGroupKind](s) }

type snapshotKind struct{}

func (snapshotKind) prefix() string   { return "snap-" }
func (snapshotKind) typeName() string { return "SnapshotID" }

// SnapshotID is an EBS snapshot ID, e.g. "snap-1234abcd".
type SnapshotID = ID[snapshotKind]

// ParseSnapshotID validates s as an EBS snapshot ID.
func ParseSnapshotID(s string) (SnapshotID, error) { return parse[snapshotKind](s) }

type subnetKind struct{}

func (subnetKind) prefix() string   { return "subnet-" }
func (subnetKind) typeName() string { return "SubnetID" }

// SubnetID is a VPC subnet ID, e.g. "subnet-1234abcd".
type SubnetID = ID[subnetKind]

// ParseSubnetID validates s as a VPC subnet ID.
func ParseSubnetID(s string) (SubnetID, error) { return parse[subnetKind](s) }

type targetGroupKind struct{}

func (targetGroupKind) prefix() string   { return "tg-" }
func (targetGroupKind) typeName() string { return "TargetGroupID" }

// TargetGroupID is a load balancer target group ID, e.g. "tg-1234abcd".
type TargetGroupID = ID[targetGroupKind]

// ParseTargetGroupID validates s as a target group ID.
func ParseTargetGroupID(s string) (TargetGroupID, error) { return parse[targetGroupKind](s) }

type transitGatewayAttachmentKind struct{}

func (transitGatewayAttachmentKind) prefix() string   { return "tgw-attach-" }
func (transitGatewayAttachmentKind) typeName() string { return "TransitGatewayAttachmentID" }

// TransitGatewayAttachmentID is a transit gateway attachment ID, e.g.
// "tgw-attach-1234abcd".
type TransitGatewayAttachmentID = ID[transitGatewayAttachmentKind]

// ParseTransitGatewayAttachmentID validates s as a transit gateway
// attachment ID.
func ParseTransitGatewayAttachmentID(s string) (TransitGatewayAttachmentID, error) {
	return parse[transitGatewayAttachmentKind](s)
}

type transitGatewayKind struct{}

func (transitGatewayKind) prefix() string   { return "tgw-" }
func (transitGatewayKind) typeName() string { return "TransitGatewayID" }

// TransitGatewayID is a transit gateway ID, e.g. "tgw-1234abcd".
type TransitGatewayID = ID[transitGatewayKind]

// ParseTransitGatewayID validates s as a transit gateway ID.
func ParseTransitGatewayID(s string) (TransitGatewayID, error) {
	return parse[transitGatewayKind](s)
}

type volumeKind struct{}

func (volumeKind) prefix() string   { return "vol-" }
func (volumeKind) typeName() string { return "VolumeID" }

// VolumeID is an EBS volume ID, e.g. "vol-1234abcd".
type VolumeID = ID[volumeKind]

// ParseVolumeID validates s as an EBS volume ID.
func ParseVolumeID(s string) (VolumeID, error) { return parse[volumeKind](s) }

type vpcKind struct{}

func (vpcKind) prefix() string   { return "vpc-" }
func (vpcKind) typeName() string { return "VPCID" }

// VPCID is a VPC (Virtual Private Cloud) ID, e.g. "vpc-1234abcd".
type VPCID = ID[vpcKind]

// ParseVPCID validates s as a VPC ID.
func ParseVPCID(s string) (VPCID, error) { return parse[vpcKind](s) }

type vpnConnectionKind struct{}

func (vpnConnectionKind) prefix() string   { return "vpn-" }
func (vpnConnectionKind) typeName() string { return "VPNConnectionID" }

// VPNConnectionID is a VPN connection ID, e.g. "vpn-1234abcd".
type VPNConnectionID = ID[vpnConnectionKind]

// ParseVPNConnectionID validates s as a VPN connection ID.
func ParseVPNConnectionID(s string) (VPNConnectionID, error) { return parse[vpnConnectionKind](s) }

type vpnGatewayKind struct{}

func (vpnGatewayKind) prefix() string   { return "vgw-" }
func (vpnGatewayKind) typeName() string { return "VPNGatewayID" }

// VPNGatewayID is a VPN gateway (virtual private gateway) ID, e.g.
// "vgw-1234abcd".
type VPNGatewayID = ID[vpnGatewayKind]

// ParseVPNGatewayID validates s as a VPN gateway ID.
func ParseVPNGatewayID(s string) (VPNGatewayID, error) { return parse[vpnGatewayKind](s) }

package resources

import "context"

// Instance states as reported by EC2
const (
	InstancePendingStatus    = "pending"
	InstanceRunningStatus    = "running"
	InstanceStoppingStatus   = "stopping"
	InstanceStoppedStatus    = "stopped"
	InstanceTerminatedStatus = "terminated"
)

// InstanceDriver abstracts the lifecycle of the helper instance
//
//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Launch(ctx context.Context, instanceConfig InstanceConfig) (Handle, error)
	Stop(ctx context.Context, instance Handle) (Handle, error)
	Terminate(ctx context.Context, instanceIDs []string) error
	Describe(ctx context.Context, instanceID string) (Handle, error)
	Address(ctx context.Context, instance Handle, usePrivateIP bool) (string, error)
}

// InstanceConfig describes the helper instance to launch
type InstanceConfig struct {
	ImageID          string
	InstanceType     string
	AvailabilityZone string
	KeyPairName      string
	Name             string
	Network          NetworkOptions
}

// NetworkOptions place the helper instance into a specific subnet and security groups.
// An empty SubnetID launches into the default VPC.
type NetworkOptions struct {
	SubnetID         string
	SecurityGroupIDs []string
	UsePrivateIP     bool
}

// NetworkDriver verifies network references and picks the zone resources are created in
//
//counterfeiter:generate . NetworkDriver
type NetworkDriver interface {
	Validate(ctx context.Context, network NetworkOptions) error
	SelectZone(ctx context.Context, network NetworkOptions) (string, error)
}

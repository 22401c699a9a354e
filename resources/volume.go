package resources

import "context"

// Volume states as reported by EC2
const (
	VolumeCreatingStatus  = "creating"
	VolumeAvailableStatus = "available"
	VolumeInUseStatus     = "in-use"
	VolumeDeletingStatus  = "deleting"
	VolumeUnknownStatus   = "unknown" // we don't actually know whether the volume was deleted or never existed
)

// Volume types used for the staging/root volumes and the registered block device map
const (
	GeneralPurposeVolumeType = "gp2"
	MagneticVolumeType       = "standard"
)

// VolumeDriver abstracts creation, attachment and removal of EBS volumes
//
//counterfeiter:generate . VolumeDriver
type VolumeDriver interface {
	Create(ctx context.Context, driverConfig VolumeDriverConfig) (Handle, error)
	Attach(ctx context.Context, instance Handle, volume Handle, device string) (string, error)
	Detach(ctx context.Context, volume Handle) error
	Delete(ctx context.Context, volume Handle) error
	Describe(ctx context.Context, volumeID string) (Handle, error)
	FindAttached(ctx context.Context, instanceID string) (Handle, error)
}

type VolumeDriverConfig struct {
	SizeGB           int64
	AvailabilityZone string
	VolumeType       string
	Name             string
}

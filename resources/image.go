package resources

import "context"

// Image creation constants
const (
	ImageAvailableStatus = "available"
	ImagePendingStatus   = "pending"
	ImageFailedStatus    = "failed"

	DefaultImageArchitecture = "x86_64"

	HvmVirtualization  = "hvm"
	ParaVirtualization = "paravirtual"

	SSDBackingStore      = "ssd"
	MagneticBackingStore = "mag"
)

const (
	hvmRootDeviceName  = "/dev/sda1"
	paraRootDeviceName = "/dev/sda"
)

// ImageProperties describes what properties the created image should have
type ImageProperties struct {
	Name               string
	Description        string
	Architecture       string
	VirtualizationType string
	BackingStore       string
	RootVolumeSizeGB   int64
	BootKernel         string
	SriovNetSupport    string
	EnaSupport         bool
}

// RootDeviceName is the device the platform boots from for the image's virtualization type.
// The root image is expected to carry a single partition in either case.
func (p ImageProperties) RootDeviceName() string {
	if p.VirtualizationType == HvmVirtualization {
		return hvmRootDeviceName
	}
	return paraRootDeviceName
}

// VolumeType maps the backing store option onto an EBS volume type
func (p ImageProperties) VolumeType() string {
	if p.BackingStore == MagneticBackingStore {
		return MagneticVolumeType
	}
	return GeneralPurposeVolumeType
}

// ImageInfo is an image handle together with the attributes preflight checks look at
type ImageInfo struct {
	Handle
	Name               string
	VirtualizationType string
	RootDeviceName     string
}

// ImageDriver abstracts the API calls required to register and inspect images
//
//counterfeiter:generate . ImageDriver
type ImageDriver interface {
	Exists(ctx context.Context, name string) (bool, error)
	Describe(ctx context.Context, imageID string) (ImageInfo, error)
	RegisterFromSnapshot(ctx context.Context, snapshot Handle, props ImageProperties) (Handle, error)
	CreateFromInstance(ctx context.Context, instance Handle, props ImageProperties) (Handle, error)
}

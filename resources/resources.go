package resources

import "fmt"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Kind tags a Handle with the type of cloud resource it refers to
type Kind string

const (
	VolumeKind   Kind = "volume"
	InstanceKind Kind = "instance"
	SnapshotKind Kind = "snapshot"
	ImageKind    Kind = "image"
)

// Handle is the last known view of a cloud resource. Handles are only refreshed by
// re-querying the cloud API and must not be edited by callers.
type Handle struct {
	ID               string
	Kind             Kind
	State            string
	AvailabilityZone string

	// Attachment is only populated for volumes that are attached to an instance
	Attachment *Attachment
}

// Attachment describes where a volume is attached
type Attachment struct {
	InstanceID string
	Device     string
	State      string
}

func (h Handle) String() string {
	return fmt.Sprintf("%s %s (%s)", h.Kind, h.ID, h.State)
}

// AttachedTo reports whether the volume is attached to the given instance
func (h Handle) AttachedTo(instanceID string) bool {
	return h.Attachment != nil && h.Attachment.InstanceID == instanceID
}

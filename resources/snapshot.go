package resources

import "context"

// Snapshot states as reported by EC2
const (
	SnapshotPendingStatus   = "pending"
	SnapshotCompletedStatus = "completed"
	SnapshotErrorStatus     = "error"
)

// SnapshotDriver abstracts the creation of a snapshot from an EBS volume
//
//counterfeiter:generate . SnapshotDriver
type SnapshotDriver interface {
	Create(ctx context.Context, volume Handle, description string) (Handle, error)
}

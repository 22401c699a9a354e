package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// snapshots are the slowest transition of a build, each attempt waits this many times longer
const snapshotWaitFactor = 2

var _ resources.SnapshotDriver = &SDKSnapshotDriver{}

// SDKSnapshotDriver snapshots the prepared root volume
type SDKSnapshotDriver struct {
	client   ComputeAPI
	policy   resources.WaitPolicy
	logger   *log.Logger
	progress io.Writer
}

func NewSnapshotDriver(logDest io.Writer, client ComputeAPI, policy resources.WaitPolicy) *SDKSnapshotDriver {
	return &SDKSnapshotDriver{
		client:   client,
		policy:   policy.Extended(snapshotWaitFactor),
		logger:   log.New(logDest, "SDKSnapshotDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create snapshots the volume and waits for the snapshot to complete
func (d *SDKSnapshotDriver) Create(ctx context.Context, volume resources.Handle, description string) (resources.Handle, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("creating snapshot of volume %s\n", volume.ID)
	snapshot, err := d.client.CreateSnapshotWithContext(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    aws.String(volume.ID),
		Description: aws.String(description),
	})
	if err != nil {
		return resources.Handle{}, fmt.Errorf("creating snapshot of volume %s: %w", volume.ID, err)
	}

	handle := resources.Handle{
		ID:    aws.StringValue(snapshot.SnapshotId),
		Kind:  resources.SnapshotKind,
		State: aws.StringValue(snapshot.State),
	}
	d.logger.Printf("created snapshot %s\n", handle.ID)

	err = waitFor(ctx, d.logger, d.progress, snapshotStatus(d.client), waiter.Config{
		ResourceID:      handle.ID,
		Kind:            resources.SnapshotKind,
		DesiredStatus:   resources.SnapshotCompletedStatus,
		FailureStatuses: []string{resources.SnapshotErrorStatus},
		Policy:          d.policy,
	})
	if err != nil {
		return handle, fmt.Errorf("waiting for snapshot %s to complete: %w", handle.ID, err)
	}

	handle.State = resources.SnapshotCompletedStatus
	return handle, nil
}

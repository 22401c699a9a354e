package driver

import (
	"context"
	"io"
	"log"

	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const unknownStatus = "unknown"

func volumeStatus(client ComputeAPI) waiter.StatusFetcher {
	return func(ctx context.Context, volumeID string) (string, error) {
		output, err := client.DescribeVolumesWithContext(ctx, &ec2.DescribeVolumesInput{
			VolumeIds: []*string{aws.String(volumeID)},
		})
		if isNotFound(err) {
			return resources.VolumeUnknownStatus, nil
		}
		if err != nil {
			return "", err
		}
		if len(output.Volumes) == 0 {
			return resources.VolumeUnknownStatus, nil
		}
		return aws.StringValue(output.Volumes[0].State), nil
	}
}

func instanceStatus(client ComputeAPI) waiter.StatusFetcher {
	return func(ctx context.Context, instanceID string) (string, error) {
		instance, err := describeInstance(ctx, client, instanceID)
		if isNotFound(err) {
			return unknownStatus, nil
		}
		if err != nil {
			return "", err
		}
		if instance == nil || instance.State == nil {
			return unknownStatus, nil
		}
		return aws.StringValue(instance.State.Name), nil
	}
}

func snapshotStatus(client ComputeAPI) waiter.StatusFetcher {
	return func(ctx context.Context, snapshotID string) (string, error) {
		output, err := client.DescribeSnapshotsWithContext(ctx, &ec2.DescribeSnapshotsInput{
			SnapshotIds: []*string{aws.String(snapshotID)},
		})
		if isNotFound(err) {
			return unknownStatus, nil
		}
		if err != nil {
			return "", err
		}
		if len(output.Snapshots) == 0 {
			return unknownStatus, nil
		}
		return aws.StringValue(output.Snapshots[0].State), nil
	}
}

func imageStatus(client ComputeAPI) waiter.StatusFetcher {
	return func(ctx context.Context, imageID string) (string, error) {
		output, err := client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
			ImageIds: []*string{aws.String(imageID)},
		})
		if isNotFound(err) {
			return unknownStatus, nil
		}
		if err != nil {
			return "", err
		}
		if len(output.Images) == 0 {
			return unknownStatus, nil
		}
		return aws.StringValue(output.Images[0].State), nil
	}
}

func describeInstance(ctx context.Context, client ComputeAPI, instanceID string) (*ec2.Instance, error) {
	output, err := client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		return nil, err
	}
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			if aws.StringValue(instance.InstanceId) == instanceID {
				return instance, nil
			}
		}
	}
	return nil, nil
}

// waitFor blocks until the resource reaches the desired state and converts an exhausted
// wait policy into a ProvisioningTimeoutError
func waitFor(ctx context.Context, logger *log.Logger, progress io.Writer, fetch waiter.StatusFetcher, c waiter.Config) error {
	c.Logger = logger
	c.Progress = progress

	result, err := waiter.WaitWithEscalation(ctx, fetch, c)
	if err != nil {
		return err
	}
	return result.TimeoutError(c)
}

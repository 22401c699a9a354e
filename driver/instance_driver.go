package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.InstanceDriver = &SDKInstanceDriver{}

// SDKInstanceDriver manages the helper instance volumes are prepared on
type SDKInstanceDriver struct {
	client   ComputeAPI
	runCtx   *RunContext
	policy   resources.WaitPolicy
	logger   *log.Logger
	progress io.Writer
}

func NewInstanceDriver(logDest io.Writer, client ComputeAPI, runCtx *RunContext, policy resources.WaitPolicy) *SDKInstanceDriver {
	return &SDKInstanceDriver{
		client:   client,
		runCtx:   runCtx,
		policy:   policy,
		logger:   log.New(logDest, "SDKInstanceDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Launch starts a single instance and waits for it to be running
func (d *SDKInstanceDriver) Launch(ctx context.Context, instanceConfig resources.InstanceConfig) (resources.Handle, error) {
	launchStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Launch() in %f minutes\n", time.Since(startTime).Minutes())
	}(launchStartTime)

	input := &ec2.RunInstancesInput{
		ImageId:           aws.String(instanceConfig.ImageID),
		InstanceType:      aws.String(instanceConfig.InstanceType),
		MinCount:          aws.Int64(1),
		MaxCount:          aws.Int64(1),
		TagSpecifications: nameTag(ec2.ResourceTypeInstance, instanceConfig.Name),
	}
	if instanceConfig.KeyPairName != "" {
		input.KeyName = aws.String(instanceConfig.KeyPairName)
	}

	network := instanceConfig.Network
	if network.SubnetID != "" {
		input.NetworkInterfaces = []*ec2.InstanceNetworkInterfaceSpecification{
			{
				DeviceIndex:              aws.Int64(0),
				SubnetId:                 aws.String(network.SubnetID),
				Groups:                   aws.StringSlice(network.SecurityGroupIDs),
				AssociatePublicIpAddress: aws.Bool(!network.UsePrivateIP),
			},
		}
	} else {
		input.Placement = &ec2.Placement{AvailabilityZone: aws.String(instanceConfig.AvailabilityZone)}
		if len(network.SecurityGroupIDs) > 0 {
			input.SecurityGroupIds = aws.StringSlice(network.SecurityGroupIDs)
		}
	}

	d.logger.Printf("launching %s instance from %s\n", instanceConfig.InstanceType, instanceConfig.ImageID)
	reservation, err := d.client.RunInstancesWithContext(ctx, input)
	if err != nil {
		return resources.Handle{}, fmt.Errorf("launching instance from %s: %w", instanceConfig.ImageID, err)
	}
	if len(reservation.Instances) == 0 || reservation.Instances[0].InstanceId == nil {
		return resources.Handle{}, errors.New("launching instance: reservation contains no instance")
	}

	instanceID := aws.StringValue(reservation.Instances[0].InstanceId)
	d.runCtx.TrackInstance(instanceID)
	d.logger.Printf("launched instance %s\n", instanceID)

	err = waitFor(ctx, d.logger, d.progress, instanceStatus(d.client), waiter.Config{
		ResourceID:      instanceID,
		Kind:            resources.InstanceKind,
		DesiredStatus:   resources.InstanceRunningStatus,
		FailureStatuses: []string{resources.InstanceTerminatedStatus},
		Policy:          d.policy,
	})
	if err != nil {
		return instanceHandle(reservation.Instances[0]), fmt.Errorf("waiting for instance %s to be running: %w", instanceID, err)
	}

	return d.Describe(ctx, instanceID)
}

// Stop stops the instance and waits for it to be stopped
func (d *SDKInstanceDriver) Stop(ctx context.Context, instance resources.Handle) (resources.Handle, error) {
	stopStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Stop() in %f minutes\n", time.Since(startTime).Minutes())
	}(stopStartTime)

	d.logger.Printf("stopping instance %s\n", instance.ID)
	_, err := d.client.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		InstanceIds: []*string{aws.String(instance.ID)},
	})
	if err != nil {
		return instance, fmt.Errorf("stopping instance %s: %w", instance.ID, err)
	}

	err = waitFor(ctx, d.logger, d.progress, instanceStatus(d.client), waiter.Config{
		ResourceID:      instance.ID,
		Kind:            resources.InstanceKind,
		DesiredStatus:   resources.InstanceStoppedStatus,
		FailureStatuses: []string{resources.InstanceTerminatedStatus},
		Policy:          d.policy,
	})
	if err != nil {
		return instance, fmt.Errorf("waiting for instance %s to stop: %w", instance.ID, err)
	}

	return d.Describe(ctx, instance.ID)
}

// Terminate terminates the instances and waits until they are gone, so the volumes
// attached to them can be detached afterwards
func (d *SDKInstanceDriver) Terminate(ctx context.Context, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	terminateStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Terminate() in %f minutes\n", time.Since(startTime).Minutes())
	}(terminateStartTime)

	d.logger.Printf("terminating instances %v\n", instanceIDs)
	_, err := d.client.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: aws.StringSlice(instanceIDs),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("terminating instances %v: %w", instanceIDs, err)
	}
	d.runCtx.ForgetInstances(instanceIDs)

	for _, instanceID := range instanceIDs {
		err = waitFor(ctx, d.logger, d.progress, instanceStatus(d.client), waiter.Config{
			ResourceID:    instanceID,
			Kind:          resources.InstanceKind,
			DesiredStatus: resources.InstanceTerminatedStatus,
			Policy:        d.policy,
		})
		if err != nil {
			return fmt.Errorf("waiting for instance %s to terminate: %w", instanceID, err)
		}
	}
	return nil
}

func (d *SDKInstanceDriver) Describe(ctx context.Context, instanceID string) (resources.Handle, error) {
	instance, err := describeInstance(ctx, d.client, instanceID)
	if err != nil {
		return resources.Handle{}, fmt.Errorf("describing instance %s: %w", instanceID, err)
	}
	if instance == nil {
		return resources.Handle{}, fmt.Errorf("instance %s not found", instanceID)
	}
	return instanceHandle(instance), nil
}

// Address returns the public address of the instance, or its private address when asked
// to. An empty address means none has been assigned yet.
func (d *SDKInstanceDriver) Address(ctx context.Context, instance resources.Handle, usePrivateIP bool) (string, error) {
	described, err := describeInstance(ctx, d.client, instance.ID)
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("describing instance %s: %w", instance.ID, err)
	}
	if described == nil {
		return "", nil
	}
	if usePrivateIP {
		return aws.StringValue(described.PrivateIpAddress), nil
	}
	return aws.StringValue(described.PublicIpAddress), nil
}

func instanceHandle(instance *ec2.Instance) resources.Handle {
	handle := resources.Handle{
		ID:   aws.StringValue(instance.InstanceId),
		Kind: resources.InstanceKind,
	}
	if instance.State != nil {
		handle.State = aws.StringValue(instance.State.Name)
	}
	if instance.Placement != nil {
		handle.AvailabilityZone = aws.StringValue(instance.Placement.AvailabilityZone)
	}
	return handle
}

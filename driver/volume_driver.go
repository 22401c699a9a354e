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

var _ resources.VolumeDriver = &SDKVolumeDriver{}

// SDKVolumeDriver creates, attaches and removes the EBS volumes of a run
type SDKVolumeDriver struct {
	client   ComputeAPI
	runCtx   *RunContext
	policy   resources.WaitPolicy
	logger   *log.Logger
	progress io.Writer
}

func NewVolumeDriver(logDest io.Writer, client ComputeAPI, runCtx *RunContext, policy resources.WaitPolicy) *SDKVolumeDriver {
	return &SDKVolumeDriver{
		client:   client,
		runCtx:   runCtx,
		policy:   policy,
		logger:   log.New(logDest, "SDKVolumeDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create makes an empty EBS volume and waits for it to become available
func (d *SDKVolumeDriver) Create(ctx context.Context, driverConfig resources.VolumeDriverConfig) (resources.Handle, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	volumeType := driverConfig.VolumeType
	if volumeType == "" {
		volumeType = resources.GeneralPurposeVolumeType
	}

	d.logger.Printf("creating %d GB %s volume in %s\n", driverConfig.SizeGB, volumeType, driverConfig.AvailabilityZone)
	volume, err := d.client.CreateVolumeWithContext(ctx, &ec2.CreateVolumeInput{
		Size:              aws.Int64(driverConfig.SizeGB),
		AvailabilityZone:  aws.String(driverConfig.AvailabilityZone),
		VolumeType:        aws.String(volumeType),
		TagSpecifications: nameTag(ec2.ResourceTypeVolume, driverConfig.Name),
	})
	if err != nil {
		return resources.Handle{}, fmt.Errorf("creating volume: %w", err)
	}

	handle := volumeHandle(volume)
	d.runCtx.TrackVolume(handle)
	d.logger.Printf("created volume %s\n", handle.ID)

	err = waitFor(ctx, d.logger, d.progress, volumeStatus(d.client), waiter.Config{
		ResourceID:    handle.ID,
		Kind:          resources.VolumeKind,
		DesiredStatus: resources.VolumeAvailableStatus,
		Policy:        d.policy,
	})
	if err != nil {
		return handle, fmt.Errorf("waiting for volume %s to become available: %w", handle.ID, err)
	}

	return d.Describe(ctx, handle.ID)
}

// Attach attaches the volume at device, or at the next free device of the run when
// device is empty, and returns the device that was requested
func (d *SDKVolumeDriver) Attach(ctx context.Context, instance resources.Handle, volume resources.Handle, device string) (string, error) {
	attachStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Attach() in %f minutes\n", time.Since(startTime).Minutes())
	}(attachStartTime)

	if device == "" {
		var err error
		device, err = d.runCtx.NextDeviceName()
		if err != nil {
			return "", fmt.Errorf("attaching volume %s: %w", volume.ID, err)
		}
	}

	d.logger.Printf("attaching volume %s to instance %s at %s\n", volume.ID, instance.ID, device)
	_, err := d.client.AttachVolumeWithContext(ctx, &ec2.AttachVolumeInput{
		Device:     aws.String(device),
		InstanceId: aws.String(instance.ID),
		VolumeId:   aws.String(volume.ID),
	})
	if err != nil {
		return "", fmt.Errorf("attaching volume %s to instance %s: %w", volume.ID, instance.ID, err)
	}

	err = waitFor(ctx, d.logger, d.progress, volumeStatus(d.client), waiter.Config{
		ResourceID:    volume.ID,
		Kind:          resources.VolumeKind,
		DesiredStatus: resources.VolumeInUseStatus,
		Policy:        d.policy,
	})
	if err != nil {
		return device, fmt.Errorf("waiting for volume %s to attach: %w", volume.ID, err)
	}

	return device, nil
}

// Detach is a no-op for volumes that are not attached
func (d *SDKVolumeDriver) Detach(ctx context.Context, volume resources.Handle) error {
	current, err := d.Describe(ctx, volume.ID)
	if err != nil {
		return err
	}
	if current.State != resources.VolumeInUseStatus {
		d.logger.Printf("volume %s is %s, nothing to detach\n", volume.ID, current.State)
		return nil
	}

	detachStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Detach() in %f minutes\n", time.Since(startTime).Minutes())
	}(detachStartTime)

	d.logger.Printf("detaching volume %s\n", volume.ID)
	_, err = d.client.DetachVolumeWithContext(ctx, &ec2.DetachVolumeInput{
		VolumeId: aws.String(volume.ID),
	})
	if err != nil {
		return fmt.Errorf("detaching volume %s: %w", volume.ID, err)
	}

	err = waitFor(ctx, d.logger, d.progress, volumeStatus(d.client), waiter.Config{
		ResourceID:    volume.ID,
		Kind:          resources.VolumeKind,
		DesiredStatus: resources.VolumeAvailableStatus,
		Policy:        d.policy,
	})
	if err != nil {
		return fmt.Errorf("waiting for volume %s to detach: %w", volume.ID, err)
	}
	return nil
}

// Delete issues the delete call without waiting for the volume to disappear
func (d *SDKVolumeDriver) Delete(ctx context.Context, volume resources.Handle) error {
	d.logger.Printf("deleting volume %s\n", volume.ID)
	_, err := d.client.DeleteVolumeWithContext(ctx, &ec2.DeleteVolumeInput{
		VolumeId: aws.String(volume.ID),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("deleting volume %s: %w", volume.ID, err)
	}

	d.runCtx.ForgetVolume(volume.ID)
	return nil
}

func (d *SDKVolumeDriver) Describe(ctx context.Context, volumeID string) (resources.Handle, error) {
	output, err := d.client.DescribeVolumesWithContext(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: []*string{aws.String(volumeID)},
	})
	if isNotFound(err) || (err == nil && len(output.Volumes) == 0) {
		return resources.Handle{ID: volumeID, Kind: resources.VolumeKind, State: resources.VolumeUnknownStatus}, nil
	}
	if err != nil {
		return resources.Handle{}, fmt.Errorf("describing volume %s: %w", volumeID, err)
	}
	return volumeHandle(output.Volumes[0]), nil
}

// FindAttached scans all volumes for the one attached to the instance
func (d *SDKVolumeDriver) FindAttached(ctx context.Context, instanceID string) (resources.Handle, error) {
	var found *resources.Handle
	err := d.client.DescribeVolumesPagesWithContext(ctx, &ec2.DescribeVolumesInput{}, func(page *ec2.DescribeVolumesOutput, _ bool) bool {
		for _, v := range page.Volumes {
			handle := volumeHandle(v)
			if handle.AttachedTo(instanceID) {
				found = &handle
				return false
			}
		}
		return true
	})
	if err != nil {
		return resources.Handle{}, fmt.Errorf("listing volumes: %w", err)
	}
	if found == nil {
		return resources.Handle{}, fmt.Errorf("no volume is attached to instance %s", instanceID)
	}
	return *found, nil
}

func volumeHandle(v *ec2.Volume) resources.Handle {
	handle := resources.Handle{
		ID:               aws.StringValue(v.VolumeId),
		Kind:             resources.VolumeKind,
		State:            aws.StringValue(v.State),
		AvailabilityZone: aws.StringValue(v.AvailabilityZone),
	}
	for _, a := range v.Attachments {
		state := aws.StringValue(a.State)
		if state == ec2.VolumeAttachmentStateDetached {
			continue
		}
		handle.Attachment = &resources.Attachment{
			InstanceID: aws.StringValue(a.InstanceId),
			Device:     aws.StringValue(a.Device),
			State:      state,
		}
		break
	}
	return handle
}

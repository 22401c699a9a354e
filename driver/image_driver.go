package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ec2uploadimg/driver/reqinputs"
	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.ImageDriver = &SDKImageDriver{}

// SDKImageDriver registers and inspects AMIs
type SDKImageDriver struct {
	client   ComputeAPI
	policy   resources.WaitPolicy
	logger   *log.Logger
	progress io.Writer
}

func NewImageDriver(logDest io.Writer, client ComputeAPI, policy resources.WaitPolicy) *SDKImageDriver {
	return &SDKImageDriver{
		client:   client,
		policy:   policy,
		logger:   log.New(logDest, "SDKImageDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Exists reports whether an image owned by the account already has the name
func (d *SDKImageDriver) Exists(ctx context.Context, name string) (bool, error) {
	output, err := d.client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Owners: []*string{aws.String("self")},
		Filters: []*ec2.Filter{
			{Name: aws.String("name"), Values: []*string{aws.String(name)}},
		},
	})
	if err != nil {
		return false, fmt.Errorf("listing images named %s: %w", name, err)
	}
	return len(output.Images) > 0, nil
}

func (d *SDKImageDriver) Describe(ctx context.Context, imageID string) (resources.ImageInfo, error) {
	output, err := d.client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(imageID)},
	})
	if err != nil {
		return resources.ImageInfo{}, fmt.Errorf("describing image %s: %w", imageID, err)
	}
	if len(output.Images) == 0 {
		return resources.ImageInfo{}, fmt.Errorf("image %s not found", imageID)
	}

	image := output.Images[0]
	return resources.ImageInfo{
		Handle: resources.Handle{
			ID:    aws.StringValue(image.ImageId),
			Kind:  resources.ImageKind,
			State: aws.StringValue(image.State),
		},
		Name:               aws.StringValue(image.Name),
		VirtualizationType: aws.StringValue(image.VirtualizationType),
		RootDeviceName:     aws.StringValue(image.RootDeviceName),
	}, nil
}

// RegisterFromSnapshot registers an image booting from the snapshot and waits for it to become available
func (d *SDKImageDriver) RegisterFromSnapshot(ctx context.Context, snapshot resources.Handle, props resources.ImageProperties) (resources.Handle, error) {
	registerStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed RegisterFromSnapshot() in %f minutes\n", time.Since(startTime).Minutes())
	}(registerStartTime)

	d.logger.Printf("registering image %s from snapshot %s\n", props.Name, snapshot.ID)
	output, err := d.client.RegisterImageWithContext(ctx, reqinputs.NewRegisterImageInput(snapshot.ID, props))
	if err != nil {
		return resources.Handle{}, fmt.Errorf("registering image from snapshot %s: %w", snapshot.ID, err)
	}

	handle := resources.Handle{
		ID:    aws.StringValue(output.ImageId),
		Kind:  resources.ImageKind,
		State: resources.ImagePendingStatus,
	}
	return d.waitAvailable(ctx, handle)
}

// CreateFromInstance images the instance without rebooting it. When the image is created
// but does not become available the handle is returned together with the wait error.
func (d *SDKImageDriver) CreateFromInstance(ctx context.Context, instance resources.Handle, props resources.ImageProperties) (resources.Handle, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed CreateFromInstance() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Printf("creating image %s from instance %s\n", props.Name, instance.ID)
	output, err := d.client.CreateImageWithContext(ctx, &ec2.CreateImageInput{
		InstanceId:  aws.String(instance.ID),
		Name:        aws.String(props.Name),
		Description: aws.String(props.Description),
		NoReboot:    aws.Bool(true),
	})
	if err != nil {
		return resources.Handle{}, fmt.Errorf("creating image from instance %s: %w", instance.ID, err)
	}

	handle := resources.Handle{
		ID:    aws.StringValue(output.ImageId),
		Kind:  resources.ImageKind,
		State: resources.ImagePendingStatus,
	}
	return d.waitAvailable(ctx, handle)
}

func (d *SDKImageDriver) waitAvailable(ctx context.Context, handle resources.Handle) (resources.Handle, error) {
	d.logger.Printf("waiting for image %s to become available\n", handle.ID)
	err := waitFor(ctx, d.logger, d.progress, imageStatus(d.client), waiter.Config{
		ResourceID:      handle.ID,
		Kind:            resources.ImageKind,
		DesiredStatus:   resources.ImageAvailableStatus,
		FailureStatuses: []string{resources.ImageFailedStatus},
		Policy:          d.policy,
	})
	if err != nil {
		return handle, fmt.Errorf("waiting for image %s to become available: %w", handle.ID, err)
	}

	handle.State = resources.ImageAvailableStatus
	return handle, nil
}

package reqinputs

import (
	"ec2uploadimg/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// NewRegisterImageInput builds the input registering an image that boots from the snapshot
func NewRegisterImageInput(snapshotID string, props resources.ImageProperties) *ec2.RegisterImageInput {
	rootDeviceName := props.RootDeviceName()

	architecture := props.Architecture
	if architecture == "" {
		architecture = resources.DefaultImageArchitecture
	}

	ebs := &ec2.EbsBlockDevice{
		DeleteOnTermination: aws.Bool(true),
		SnapshotId:          aws.String(snapshotID),
		VolumeType:          aws.String(props.VolumeType()),
	}
	if props.RootVolumeSizeGB > 0 {
		ebs.VolumeSize = aws.Int64(props.RootVolumeSizeGB)
	}

	input := &ec2.RegisterImageInput{
		Architecture:       aws.String(architecture),
		Description:        aws.String(props.Description),
		VirtualizationType: aws.String(props.VirtualizationType),
		Name:               aws.String(props.Name),
		RootDeviceName:     aws.String(rootDeviceName),
		BlockDeviceMappings: []*ec2.BlockDeviceMapping{
			{
				DeviceName: aws.String(rootDeviceName),
				Ebs:        ebs,
			},
		},
	}

	if props.BootKernel != "" {
		input.KernelId = aws.String(props.BootKernel)
	}
	if props.SriovNetSupport != "" {
		input.SriovNetSupport = aws.String(props.SriovNetSupport)
	}
	if props.EnaSupport {
		input.EnaSupport = aws.Bool(true)
	}

	return input
}

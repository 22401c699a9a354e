package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"ec2uploadimg/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.NetworkDriver = &SDKNetworkDriver{}

// SDKNetworkDriver checks subnet and security group references and picks availability zones
type SDKNetworkDriver struct {
	client ComputeAPI
	logger *log.Logger
}

func NewNetworkDriver(logDest io.Writer, client ComputeAPI) *SDKNetworkDriver {
	return &SDKNetworkDriver{
		client: client,
		logger: log.New(logDest, "SDKNetworkDriver ", log.LstdFlags),
	}
}

// Validate returns a PreflightError when the subnet or any security group does not exist
func (d *SDKNetworkDriver) Validate(ctx context.Context, network resources.NetworkOptions) error {
	if network.SubnetID != "" {
		d.logger.Printf("verifying subnet %s\n", network.SubnetID)
		output, err := d.client.DescribeSubnetsWithContext(ctx, &ec2.DescribeSubnetsInput{
			SubnetIds: []*string{aws.String(network.SubnetID)},
		})
		if isNotFound(err) || (err == nil && len(output.Subnets) == 0) {
			return resources.PreflightError{Reason: fmt.Sprintf("subnet %s does not exist", network.SubnetID)}
		}
		if err != nil {
			return fmt.Errorf("describing subnet %s: %w", network.SubnetID, err)
		}
	}

	if len(network.SecurityGroupIDs) > 0 {
		d.logger.Printf("verifying security groups %v\n", network.SecurityGroupIDs)
		output, err := d.client.DescribeSecurityGroupsWithContext(ctx, &ec2.DescribeSecurityGroupsInput{
			GroupIds: aws.StringSlice(network.SecurityGroupIDs),
		})
		if isNotFound(err) {
			return resources.PreflightError{Reason: fmt.Sprintf("security groups %v do not all exist", network.SecurityGroupIDs)}
		}
		if err != nil {
			return fmt.Errorf("describing security groups %v: %w", network.SecurityGroupIDs, err)
		}

		found := map[string]bool{}
		for _, group := range output.SecurityGroups {
			found[aws.StringValue(group.GroupId)] = true
		}
		for _, id := range network.SecurityGroupIDs {
			if !found[id] {
				return resources.PreflightError{Reason: fmt.Sprintf("security group %s does not exist", id)}
			}
		}
	}

	return nil
}

// SelectZone uses the zone of the subnet when one is given, otherwise the last
// available zone of the region
func (d *SDKNetworkDriver) SelectZone(ctx context.Context, network resources.NetworkOptions) (string, error) {
	if network.SubnetID != "" {
		output, err := d.client.DescribeSubnetsWithContext(ctx, &ec2.DescribeSubnetsInput{
			SubnetIds: []*string{aws.String(network.SubnetID)},
		})
		if err != nil {
			return "", fmt.Errorf("describing subnet %s: %w", network.SubnetID, err)
		}
		if len(output.Subnets) == 0 {
			return "", fmt.Errorf("subnet %s not found", network.SubnetID)
		}
		return aws.StringValue(output.Subnets[0].AvailabilityZone), nil
	}

	output, err := d.client.DescribeAvailabilityZonesWithContext(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("state"), Values: []*string{aws.String("available")}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("listing availability zones: %w", err)
	}
	if len(output.AvailabilityZones) == 0 {
		return "", errors.New("finding any available availability zones")
	}

	zone := aws.StringValue(output.AvailabilityZones[len(output.AvailabilityZones)-1].ZoneName)
	d.logger.Printf("using availability zone %s\n", zone)
	return zone, nil
}

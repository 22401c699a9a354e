package driverset

import (
	"context"
	"fmt"
	"io"
	"log"

	"ec2uploadimg/config"
	"ec2uploadimg/driver"
	"ec2uploadimg/resources"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const apiRetries = 5

// Cleaner tears down what a run provisioned
//
//counterfeiter:generate . Cleaner
type Cleaner interface {
	Cleanup(ctx context.Context, endConnection bool) error
}

// DriverSet bundles the drivers of one image build. All drivers share the run's RunContext.
//
//counterfeiter:generate . DriverSet
type DriverSet interface {
	VolumeDriver() resources.VolumeDriver
	InstanceDriver() resources.InstanceDriver
	SnapshotDriver() resources.SnapshotDriver
	ImageDriver() resources.ImageDriver
	NetworkDriver() resources.NetworkDriver
	Cleaner() Cleaner
	RunContext() *driver.RunContext
}

type regionDriverSet struct {
	runCtx         *driver.RunContext
	volumeDriver   *driver.SDKVolumeDriver
	instanceDriver *driver.SDKInstanceDriver
	snapshotDriver *driver.SDKSnapshotDriver
	imageDriver    *driver.SDKImageDriver
	networkDriver  *driver.SDKNetworkDriver
	cleaner        *driver.Cleaner
}

// NewRegionSession creates the aws session all drivers of a region talk through
func NewRegionSession(logDest io.Writer, creds config.Credentials) (*session.Session, error) {
	logger := log.New(logDest, "AWSSession ", log.LstdFlags)
	awsConfig := creds.GetAwsConfig().
		WithLogger(driver.NewDriverLogger(logger))
	awsConfig = request.WithRetryer(awsConfig, driver.NewEC2RetryerWithRetries(apiRetries))

	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating aws session for region %s: %w", creds.Region, err)
	}
	return awsSession, nil
}

// NewStandardRegionDriverSet builds the drivers on a real EC2 client for the region of creds
func NewStandardRegionDriverSet(logDest io.Writer, creds config.Credentials, runCtx *driver.RunContext, policy resources.WaitPolicy) (DriverSet, error) {
	awsSession, err := NewRegionSession(logDest, creds)
	if err != nil {
		return nil, err
	}
	return NewDriverSet(logDest, ec2.New(awsSession), runCtx, policy), nil
}

// NewDriverSet builds the drivers on any ComputeAPI implementation
func NewDriverSet(logDest io.Writer, client driver.ComputeAPI, runCtx *driver.RunContext, policy resources.WaitPolicy) DriverSet {
	volumeDriver := driver.NewVolumeDriver(logDest, client, runCtx, policy)
	instanceDriver := driver.NewInstanceDriver(logDest, client, runCtx, policy)

	return &regionDriverSet{
		runCtx:         runCtx,
		volumeDriver:   volumeDriver,
		instanceDriver: instanceDriver,
		snapshotDriver: driver.NewSnapshotDriver(logDest, client, policy),
		imageDriver:    driver.NewImageDriver(logDest, client, policy),
		networkDriver:  driver.NewNetworkDriver(logDest, client),
		cleaner:        driver.NewCleaner(logDest, runCtx, instanceDriver, volumeDriver),
	}
}

func (s *regionDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *regionDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *regionDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *regionDriverSet) ImageDriver() resources.ImageDriver {
	return s.imageDriver
}

func (s *regionDriverSet) NetworkDriver() resources.NetworkDriver {
	return s.networkDriver
}

func (s *regionDriverSet) Cleaner() Cleaner {
	return s.cleaner
}

func (s *regionDriverSet) RunContext() *driver.RunContext {
	return s.runCtx
}

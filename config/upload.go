package config

import (
	"errors"
	"fmt"
	"time"

	"ec2uploadimg/resources"

	uuid "github.com/satori/go.uuid"
)

// Upload option defaults
const (
	DefaultDescription      = "AWS EC2 AMI"
	DefaultInstanceType     = "t2.micro"
	DefaultRootVolumeSizeGB = 10
	DefaultSSHUser          = "ec2-user"
	DefaultWaitCount        = 1

	resourceNamePrefix = "ec2uploadimg"
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type UploadConfiguration struct {
	SourcePath     string
	ImageName      string
	Region         string
	LauncherImage  string
	SSHKeyPairName string
	PrivateKeyPath string

	Description        string
	Architecture       string
	VirtualizationType string
	BackingStore       string
	RootVolumeSizeGB   int64
	InstanceType       string
	SSHUser            string
	OperationTimeout   time.Duration
	WaitCount          int
	RunID              string

	Account          string
	AccessKey        string
	SecretKey        string
	RoleArn          string
	BootKernel       string
	SriovSupport     string
	EnaSupport       bool
	SubnetID         string
	SecurityGroupIDs []string
	UsePrivateIP     bool
	UseRootSwap      bool
	Verbose          bool
}

// NewUploadConfiguration returns a configuration with every optional setting defaulted
func NewUploadConfiguration() UploadConfiguration {
	return UploadConfiguration{
		Description:        DefaultDescription,
		Architecture:       resources.DefaultImageArchitecture,
		VirtualizationType: resources.HvmVirtualization,
		BackingStore:       resources.SSDBackingStore,
		RootVolumeSizeGB:   DefaultRootVolumeSizeGB,
		InstanceType:       DefaultInstanceType,
		SSHUser:            DefaultSSHUser,
		OperationTimeout:   resources.DefaultOperationTimeout,
		WaitCount:          DefaultWaitCount,
		RunID:              uuid.NewV4().String(),
	}
}

// ApplyAccount fills settings not given explicitly from the ec2utils account
func (c *UploadConfiguration) ApplyAccount(settings AccountSettings) {
	fill := func(target *string, value string) {
		if *target == "" {
			*target = value
		}
	}
	fill(&c.AccessKey, settings.AccessKeyID)
	fill(&c.SecretKey, settings.SecretAccessKey)
	fill(&c.SSHKeyPairName, settings.SSHKeyName)
	fill(&c.PrivateKeyPath, settings.SSHPrivateKey)
	fill(&c.LauncherImage, settings.LauncherImage)
	fill(&c.SubnetID, settings.SubnetID)
	if settings.User != "" && c.SSHUser == DefaultSSHUser {
		c.SSHUser = settings.User
	}
	if settings.InstanceType != "" && c.InstanceType == DefaultInstanceType {
		c.InstanceType = settings.InstanceType
	}
	if len(c.SecurityGroupIDs) == 0 {
		c.SecurityGroupIDs = settings.SecurityGroupIDs
	}
}

func (c UploadConfiguration) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source image file must be specified")
	}
	if c.ImageName == "" {
		return errors.New("image name must be specified")
	}
	if c.Region == "" {
		return errors.New("region must be specified")
	}
	if c.LauncherImage == "" {
		return errors.New("launcher image id must be specified")
	}
	if c.SSHKeyPairName == "" {
		return errors.New("ssh key pair name must be specified")
	}
	if c.PrivateKeyPath == "" {
		return errors.New("ssh private key file must be specified")
	}

	validVirtualization := map[string]bool{
		resources.HvmVirtualization:  true,
		resources.ParaVirtualization: true,
	}
	if !validVirtualization[c.VirtualizationType] {
		return errors.New("virtualization type must be one of: ['hvm', 'paravirtual']")
	}

	validBackingStore := map[string]bool{
		resources.SSDBackingStore:      true,
		resources.MagneticBackingStore: true,
	}
	if !validBackingStore[c.BackingStore] {
		return errors.New("backing store must be one of: ['ssd', 'mag']")
	}

	if c.RootVolumeSizeGB < 1 {
		return errors.New("root volume size must be at least 1 GB")
	}
	if c.OperationTimeout <= 0 {
		return errors.New("operation timeout must be positive")
	}
	if c.WaitCount < 1 {
		return errors.New("wait count must be at least 1")
	}
	if c.UsePrivateIP && c.SubnetID == "" {
		return errors.New("connecting over the private ip requires a subnet id")
	}

	return nil
}

// WaitPolicy derives the resource wait policy from the timeout and wait count options
func (c UploadConfiguration) WaitPolicy(pollInterval time.Duration) resources.WaitPolicy {
	return resources.NewWaitPolicy(c.OperationTimeout, pollInterval, c.WaitCount)
}

func (c UploadConfiguration) ImageProperties() resources.ImageProperties {
	return resources.ImageProperties{
		Name:               c.ImageName,
		Description:        c.Description,
		Architecture:       c.Architecture,
		VirtualizationType: c.VirtualizationType,
		BackingStore:       c.BackingStore,
		RootVolumeSizeGB:   c.RootVolumeSizeGB,
		BootKernel:         c.BootKernel,
		SriovNetSupport:    c.SriovSupport,
		EnaSupport:         c.EnaSupport,
	}
}

func (c UploadConfiguration) NetworkOptions() resources.NetworkOptions {
	return resources.NetworkOptions{
		SubnetID:         c.SubnetID,
		SecurityGroupIDs: c.SecurityGroupIDs,
		UsePrivateIP:     c.UsePrivateIP,
	}
}

func (c UploadConfiguration) Credentials() Credentials {
	return Credentials{
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		RoleArn:   c.RoleArn,
		Region:    c.Region,
	}
}

// ResourceName is the Name tag put on everything the run provisions
func (c UploadConfiguration) ResourceName() string {
	return fmt.Sprintf("%s-%s", resourceNamePrefix, c.RunID)
}

// ParseList splits a comma separated option value
func ParseList(s string) []string {
	return splitList(s)
}

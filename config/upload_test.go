package config_test

import (
	"time"

	"ec2uploadimg/config"
	"ec2uploadimg/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func validUpload() config.UploadConfiguration {
	c := config.NewUploadConfiguration()
	c.SourcePath = "/tmp/image.raw.xz"
	c.ImageName = "test-image"
	c.Region = "us-east-1"
	c.LauncherImage = "ami-launcher"
	c.SSHKeyPairName = "test-key"
	c.PrivateKeyPath = "/tmp/id_rsa"
	return c
}

var _ = Describe("UploadConfiguration", func() {
	Describe("NewUploadConfiguration", func() {
		It("defaults every optional setting", func() {
			c := config.NewUploadConfiguration()

			Expect(c.Description).To(Equal("AWS EC2 AMI"))
			Expect(c.Architecture).To(Equal("x86_64"))
			Expect(c.VirtualizationType).To(Equal(resources.HvmVirtualization))
			Expect(c.BackingStore).To(Equal(resources.SSDBackingStore))
			Expect(c.RootVolumeSizeGB).To(Equal(int64(10)))
			Expect(c.InstanceType).To(Equal("t2.micro"))
			Expect(c.SSHUser).To(Equal("ec2-user"))
			Expect(c.OperationTimeout).To(Equal(300 * time.Second))
			Expect(c.WaitCount).To(Equal(1))
		})

		It("generates a distinct run id each time", func() {
			first := config.NewUploadConfiguration()
			second := config.NewUploadConfiguration()

			Expect(first.RunID).ToNot(BeEmpty())
			Expect(first.RunID).ToNot(Equal(second.RunID))
			Expect(first.ResourceName()).To(Equal("ec2uploadimg-" + first.RunID))
		})
	})

	Describe("Validate", func() {
		It("accepts a complete configuration", func() {
			Expect(validUpload().Validate()).To(Succeed())
		})

		It("accepts security groups of the default vpc without a subnet", func() {
			c := validUpload()
			c.SecurityGroupIDs = []string{"sg-1"}
			Expect(c.Validate()).To(Succeed())
		})

		DescribeTable("rejects invalid configurations",
			func(modify func(*config.UploadConfiguration), message string) {
				c := validUpload()
				modify(&c)
				Expect(c.Validate()).To(MatchError(message))
			},
			Entry("no source", func(c *config.UploadConfiguration) { c.SourcePath = "" }, "source image file must be specified"),
			Entry("no name", func(c *config.UploadConfiguration) { c.ImageName = "" }, "image name must be specified"),
			Entry("no region", func(c *config.UploadConfiguration) { c.Region = "" }, "region must be specified"),
			Entry("no launcher", func(c *config.UploadConfiguration) { c.LauncherImage = "" }, "launcher image id must be specified"),
			Entry("no key pair", func(c *config.UploadConfiguration) { c.SSHKeyPairName = "" }, "ssh key pair name must be specified"),
			Entry("no private key", func(c *config.UploadConfiguration) { c.PrivateKeyPath = "" }, "ssh private key file must be specified"),
			Entry("bad virtualization", func(c *config.UploadConfiguration) { c.VirtualizationType = "bogus" }, "virtualization type must be one of: ['hvm', 'paravirtual']"),
			Entry("bad backing store", func(c *config.UploadConfiguration) { c.BackingStore = "nvme" }, "backing store must be one of: ['ssd', 'mag']"),
			Entry("no root size", func(c *config.UploadConfiguration) { c.RootVolumeSizeGB = 0 }, "root volume size must be at least 1 GB"),
			Entry("no timeout", func(c *config.UploadConfiguration) { c.OperationTimeout = 0 }, "operation timeout must be positive"),
			Entry("no wait count", func(c *config.UploadConfiguration) { c.WaitCount = 0 }, "wait count must be at least 1"),
			Entry("private ip without subnet", func(c *config.UploadConfiguration) { c.UsePrivateIP = true }, "connecting over the private ip requires a subnet id"),
		)
	})

	Describe("ApplyAccount", func() {
		It("fills only the settings that were not given", func() {
			c := config.NewUploadConfiguration()
			c.SSHKeyPairName = "explicit-key"

			c.ApplyAccount(config.AccountSettings{
				AccessKeyID:      "access",
				SecretAccessKey:  "secret",
				SSHKeyName:       "account-key",
				SSHPrivateKey:    "/keys/id",
				User:             "root",
				LauncherImage:    "ami-account",
				InstanceType:     "m5.large",
				SecurityGroupIDs: []string{"sg-1"},
			})

			Expect(c.AccessKey).To(Equal("access"))
			Expect(c.SecretKey).To(Equal("secret"))
			Expect(c.SSHKeyPairName).To(Equal("explicit-key"))
			Expect(c.PrivateKeyPath).To(Equal("/keys/id"))
			Expect(c.SSHUser).To(Equal("root"))
			Expect(c.LauncherImage).To(Equal("ami-account"))
			Expect(c.InstanceType).To(Equal("m5.large"))
			Expect(c.SecurityGroupIDs).To(Equal([]string{"sg-1"}))
		})
	})

	Describe("derived values", func() {
		It("builds the wait policy from the timeout and wait count", func() {
			c := validUpload()
			c.WaitCount = 3

			policy := c.WaitPolicy(10 * time.Second)
			Expect(policy.PollInterval).To(Equal(10 * time.Second))
			Expect(policy.MaxWaitCyclesPerAttempt).To(Equal(30))
			Expect(policy.MaxAttempts).To(Equal(3))
		})

		It("carries the image options into the image properties", func() {
			c := validUpload()
			c.BackingStore = resources.MagneticBackingStore
			c.EnaSupport = true

			props := c.ImageProperties()
			Expect(props.Name).To(Equal("test-image"))
			Expect(props.VolumeType()).To(Equal(resources.MagneticVolumeType))
			Expect(props.EnaSupport).To(BeTrue())
			Expect(props.RootVolumeSizeGB).To(Equal(int64(10)))
		})

		It("scopes the credentials to the region", func() {
			c := validUpload()
			c.AccessKey = "access"

			Expect(c.Credentials()).To(Equal(config.Credentials{AccessKey: "access", Region: "us-east-1"}))
		})

		It("splits comma separated lists", func() {
			Expect(config.ParseList(" sg-1,sg-2 ,, ")).To(Equal([]string{"sg-1", "sg-2"}))
			Expect(config.ParseList("")).To(BeEmpty())
		})
	})
})

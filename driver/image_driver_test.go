package driver_test

import (
	"context"
	"errors"

	"ec2uploadimg/driver"
	"ec2uploadimg/resources"
	"ec2uploadimg/test_helpers"

	"github.com/aws/aws-sdk-go/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDKImageDriver", func() {
	var (
		ctx     context.Context
		compute *test_helpers.FakeCompute
		runCtx  *driver.RunContext
		images  *driver.SDKImageDriver
		props   resources.ImageProperties
	)

	BeforeEach(func() {
		ctx = context.Background()
		compute = test_helpers.NewFakeCompute()
		compute.Lag = 1
		runCtx = driver.NewRunContext("/tmp/image.raw", resources.ImageProperties{})
		images = driver.NewImageDriver(GinkgoWriter, compute, fastPolicy)
		props = resources.ImageProperties{
			Name:               "sles-15-sp5",
			Description:        "SUSE Linux Enterprise Server 15 SP5",
			VirtualizationType: resources.HvmVirtualization,
			RootVolumeSizeGB:   10,
		}
	})

	Describe("Exists", func() {
		It("only finds images owned by the account", func() {
			compute.AddImage("sles-15-sp5", resources.HvmVirtualization, "/dev/sda1")

			exists, err := images.Exists(ctx, "sles-15-sp5")
			Expect(err).ToNot(HaveOccurred())
			Expect(exists).To(BeFalse())

			compute.AddOwnedImage("sles-15-sp5")
			exists, err = images.Exists(ctx, "sles-15-sp5")
			Expect(err).ToNot(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Describe("Describe", func() {
		It("returns the virtualization type of the image", func() {
			id := compute.AddImage("helper", resources.ParaVirtualization, "/dev/sda")

			info, err := images.Describe(ctx, id)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.ID).To(Equal(id))
			Expect(info.VirtualizationType).To(Equal(resources.ParaVirtualization))
			Expect(info.RootDeviceName).To(Equal("/dev/sda"))
		})

		It("fails for an unknown image", func() {
			_, err := images.Describe(ctx, "ami-missing")
			Expect(err).To(MatchError(ContainSubstring("InvalidAMIID.NotFound")))
		})
	})

	Describe("RegisterFromSnapshot", func() {
		It("registers an available image from the snapshot", func() {
			volume, err := driver.NewVolumeDriver(GinkgoWriter, compute, runCtx, fastPolicy).
				Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1a"})
			Expect(err).ToNot(HaveOccurred())
			snapshot, err := driver.NewSnapshotDriver(GinkgoWriter, compute, fastPolicy).Create(ctx, volume, "root")
			Expect(err).ToNot(HaveOccurred())

			image, err := images.RegisterFromSnapshot(ctx, snapshot, props)
			Expect(err).ToNot(HaveOccurred())
			Expect(image.State).To(Equal(resources.ImageAvailableStatus))

			input := compute.RegisteredImage(image.ID)
			Expect(aws.StringValue(input.RootDeviceName)).To(Equal("/dev/sda1"))
			Expect(aws.StringValue(input.BlockDeviceMappings[0].Ebs.SnapshotId)).To(Equal(snapshot.ID))
		})
	})

	Describe("CreateFromInstance", func() {
		var instance resources.Handle

		BeforeEach(func() {
			helperImage := compute.AddImage("helper", resources.HvmVirtualization, "/dev/sda1")
			var err error
			instance, err = driver.NewInstanceDriver(GinkgoWriter, compute, runCtx, fastPolicy).
				Launch(ctx, resources.InstanceConfig{ImageID: helperImage, InstanceType: "t2.micro", AvailabilityZone: "us-east-1a"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("images the instance without a reboot", func() {
			image, err := images.CreateFromInstance(ctx, instance, props)
			Expect(err).ToNot(HaveOccurred())
			Expect(image.State).To(Equal(resources.ImageAvailableStatus))
			Expect(aws.BoolValue(compute.LastCreateImageInput.NoReboot)).To(BeTrue())
		})

		It("returns the image together with the timeout error", func() {
			compute.FreezeNext("image")

			image, err := images.CreateFromInstance(ctx, instance, props)
			var timeoutErr resources.ProvisioningTimeoutError
			Expect(errors.As(err, &timeoutErr)).To(BeTrue())
			Expect(image.ID).ToNot(BeEmpty())
			Expect(timeoutErr.ResourceID).To(Equal(image.ID))
		})
	})
})

package driver_test

import (
	"context"
	"errors"

	"ec2uploadimg/driver"
	"ec2uploadimg/resources"
	"ec2uploadimg/test_helpers"

	"github.com/aws/aws-sdk-go/aws/awserr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDKVolumeDriver", func() {
	var (
		ctx       context.Context
		compute   *test_helpers.FakeCompute
		runCtx    *driver.RunContext
		volumes   *driver.SDKVolumeDriver
		instances *driver.SDKInstanceDriver
		helper    resources.Handle
	)

	BeforeEach(func() {
		ctx = context.Background()
		compute = test_helpers.NewFakeCompute()
		compute.Lag = 1
		runCtx = driver.NewRunContext("/tmp/image.raw", resources.ImageProperties{})
		volumes = driver.NewVolumeDriver(GinkgoWriter, compute, runCtx, fastPolicy)
		instances = driver.NewInstanceDriver(GinkgoWriter, compute, runCtx, fastPolicy)

		helperImage := compute.AddImage("helper", resources.HvmVirtualization, "/dev/sda1")
		var err error
		helper, err = instances.Launch(ctx, resources.InstanceConfig{
			ImageID:          helperImage,
			InstanceType:     "t2.micro",
			AvailabilityZone: "us-east-1c",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("creates an available volume and tracks it", func() {
			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 20, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())
			Expect(volume.State).To(Equal(resources.VolumeAvailableStatus))
			Expect(volume.Kind).To(Equal(resources.VolumeKind))
			Expect(volume.AvailabilityZone).To(Equal("us-east-1c"))
			Expect(runCtx.Volumes()).To(ConsistOf(HaveField("ID", volume.ID)))
		})

		It("returns a timeout error for a volume that never becomes available, still tracking it", func() {
			compute.FreezeNext("volume")

			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 20, AvailabilityZone: "us-east-1c"})
			var timeoutErr resources.ProvisioningTimeoutError
			Expect(errors.As(err, &timeoutErr)).To(BeTrue())
			Expect(timeoutErr.ResourceID).To(Equal(volume.ID))
			Expect(timeoutErr.ExpectedState).To(Equal("available"))
			Expect(timeoutErr.LastState).To(Equal("creating"))
			Expect(timeoutErr.Attempts).To(Equal(2))
			Expect(runCtx.Volumes()).To(HaveLen(1))
		})

		It("returns the API error", func() {
			compute.Errors["CreateVolume"] = awserr.New("VolumeLimitExceeded", "too many volumes", nil)

			_, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 20})
			Expect(err).To(MatchError(ContainSubstring("VolumeLimitExceeded")))
			Expect(runCtx.Volumes()).To(BeEmpty())
		})
	})

	Describe("Attach", func() {
		It("requests distinct devices in order when none is given", func() {
			first, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 20, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())
			second, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())

			firstDevice, err := volumes.Attach(ctx, helper, first, "")
			Expect(err).ToNot(HaveOccurred())
			secondDevice, err := volumes.Attach(ctx, helper, second, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(firstDevice).To(Equal("/dev/sdf"))
			Expect(secondDevice).To(Equal("/dev/sdg"))

			attached, err := volumes.Describe(ctx, second.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(attached.State).To(Equal(resources.VolumeInUseStatus))
			Expect(attached.AttachedTo(helper.ID)).To(BeTrue())
			Expect(attached.Attachment.Device).To(Equal("/dev/sdg"))
		})

		It("uses the requested device", func() {
			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())

			device, err := volumes.Attach(ctx, helper, volume, "/dev/sdk")
			Expect(err).ToNot(HaveOccurred())
			Expect(device).To(Equal("/dev/sdk"))

			next, err := runCtx.NextDeviceName()
			Expect(err).ToNot(HaveOccurred())
			Expect(next).To(Equal("/dev/sdf"))
		})
	})

	Describe("Detach", func() {
		It("does nothing for a volume that is already available", func() {
			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())

			Expect(volumes.Detach(ctx, volume)).To(Succeed())
			Expect(compute.Calls("DetachVolume")).To(BeZero())
		})

		It("detaches an attached volume and waits until it is available", func() {
			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())
			_, err = volumes.Attach(ctx, helper, volume, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(volumes.Detach(ctx, volume)).To(Succeed())
			Expect(compute.Calls("DetachVolume")).To(Equal(1))

			detached, err := volumes.Describe(ctx, volume.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(detached.State).To(Equal(resources.VolumeAvailableStatus))
			Expect(detached.Attachment).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("deletes the volume and stops tracking it", func() {
			volume, err := volumes.Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1c"})
			Expect(err).ToNot(HaveOccurred())

			Expect(volumes.Delete(ctx, volume)).To(Succeed())
			Expect(runCtx.Volumes()).To(BeEmpty())

			gone, err := volumes.Describe(ctx, volume.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(gone.State).To(Equal(resources.VolumeUnknownStatus))
		})
	})

	Describe("FindAttached", func() {
		It("finds the root volume of the instance", func() {
			root, err := volumes.FindAttached(ctx, helper.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(root.Attachment.Device).To(Equal("/dev/sda1"))
		})

		It("fails when nothing is attached", func() {
			_, err := volumes.FindAttached(ctx, "i-missing")
			Expect(err).To(MatchError("no volume is attached to instance i-missing"))
		})
	})
})

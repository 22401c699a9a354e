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

var _ = Describe("SDKInstanceDriver", func() {
	var (
		ctx         context.Context
		compute     *test_helpers.FakeCompute
		runCtx      *driver.RunContext
		instances   *driver.SDKInstanceDriver
		helperImage string
		config      resources.InstanceConfig
	)

	BeforeEach(func() {
		ctx = context.Background()
		compute = test_helpers.NewFakeCompute()
		compute.Lag = 2
		runCtx = driver.NewRunContext("/tmp/image.raw", resources.ImageProperties{})
		instances = driver.NewInstanceDriver(GinkgoWriter, compute, runCtx, fastPolicy)
		helperImage = compute.AddImage("helper", resources.HvmVirtualization, "/dev/sda1")
		config = resources.InstanceConfig{
			ImageID:          helperImage,
			InstanceType:     "t2.micro",
			AvailabilityZone: "us-east-1b",
			KeyPairName:      "build-key",
			Name:             "ec2uploadimg-run",
		}
	})

	Describe("Launch", func() {
		It("launches a running instance into the zone and tracks it", func() {
			instance, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.State).To(Equal(resources.InstanceRunningStatus))
			Expect(instance.AvailabilityZone).To(Equal("us-east-1b"))
			Expect(runCtx.InstanceIDs()).To(Equal([]string{instance.ID}))

			input := compute.LastRunInstancesInput
			Expect(aws.StringValue(input.KeyName)).To(Equal("build-key"))
			Expect(aws.StringValue(input.TagSpecifications[0].Tags[0].Value)).To(Equal("ec2uploadimg-run"))
			Expect(input.NetworkInterfaces).To(BeEmpty())
		})

		It("launches into the subnet through a network interface", func() {
			compute.AddSubnet("subnet-1", "us-east-1a")
			config.Network = resources.NetworkOptions{SubnetID: "subnet-1", SecurityGroupIDs: []string{"sg-1"}}

			instance, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.AvailabilityZone).To(Equal("us-east-1a"))

			input := compute.LastRunInstancesInput
			Expect(input.Placement).To(BeNil())
			Expect(input.NetworkInterfaces).To(HaveLen(1))
			Expect(aws.StringValueSlice(input.NetworkInterfaces[0].Groups)).To(Equal([]string{"sg-1"}))
			Expect(aws.BoolValue(input.NetworkInterfaces[0].AssociatePublicIpAddress)).To(BeTrue())
		})

		It("passes security groups directly when launching into the default vpc", func() {
			config.Network = resources.NetworkOptions{SecurityGroupIDs: []string{"sg-1", "sg-2"}}

			_, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())

			input := compute.LastRunInstancesInput
			Expect(input.NetworkInterfaces).To(BeEmpty())
			Expect(aws.StringValue(input.Placement.AvailabilityZone)).To(Equal("us-east-1b"))
			Expect(aws.StringValueSlice(input.SecurityGroupIds)).To(Equal([]string{"sg-1", "sg-2"}))
		})

		It("keeps tracking an instance that never starts", func() {
			compute.FreezeNext("instance")

			_, err := instances.Launch(ctx, config)
			var timeoutErr resources.ProvisioningTimeoutError
			Expect(errors.As(err, &timeoutErr)).To(BeTrue())
			Expect(timeoutErr.Kind).To(Equal(resources.InstanceKind))
			Expect(runCtx.InstanceIDs()).To(HaveLen(1))
		})
	})

	Describe("Address", func() {
		It("returns the public address, or the private one when asked", func() {
			instance, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())

			public, err := instances.Address(ctx, instance, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(public).To(HavePrefix("54."))

			private, err := instances.Address(ctx, instance, true)
			Expect(err).ToNot(HaveOccurred())
			Expect(private).To(HavePrefix("10."))
		})
	})

	Describe("Stop", func() {
		It("waits for the instance to be stopped", func() {
			instance, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())

			stopped, err := instances.Stop(ctx, instance)
			Expect(err).ToNot(HaveOccurred())
			Expect(stopped.State).To(Equal(resources.InstanceStoppedStatus))
		})
	})

	Describe("Terminate", func() {
		It("terminates the instances and forgets them", func() {
			instance, err := instances.Launch(ctx, config)
			Expect(err).ToNot(HaveOccurred())

			Expect(instances.Terminate(ctx, runCtx.InstanceIDs())).To(Succeed())
			Expect(runCtx.InstanceIDs()).To(BeEmpty())
			Expect(compute.InstanceState(instance.ID)).To(Equal(resources.InstanceTerminatedStatus))
			Expect(compute.ActiveInstances()).To(BeEmpty())
			Expect(compute.VolumeIDs()).To(BeEmpty())
		})

		It("does nothing without instances", func() {
			Expect(instances.Terminate(ctx, nil)).To(Succeed())
			Expect(compute.Calls("TerminateInstances")).To(BeZero())
		})
	})
})

package builder_test

import (
	"context"
	"errors"

	"ec2uploadimg/builder"
	"ec2uploadimg/driver"
	"ec2uploadimg/driverset/driversetfakes"
	"ec2uploadimg/resources"
	"ec2uploadimg/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ImageBuilder preflight", func() {
	var (
		ctx            context.Context
		drivers        *driversetfakes.FakeDriverSet
		cleaner        *driversetfakes.FakeCleaner
		imageDriver    *resourcesfakes.FakeImageDriver
		networkDriver  *resourcesfakes.FakeNetworkDriver
		instanceDriver *resourcesfakes.FakeInstanceDriver
		c              builder.Config
	)

	BeforeEach(func() {
		ctx = context.Background()

		cleaner = &driversetfakes.FakeCleaner{}
		imageDriver = &resourcesfakes.FakeImageDriver{}
		networkDriver = &resourcesfakes.FakeNetworkDriver{}
		instanceDriver = &resourcesfakes.FakeInstanceDriver{}

		drivers = &driversetfakes.FakeDriverSet{}
		drivers.CleanerReturns(cleaner)
		drivers.ImageDriverReturns(imageDriver)
		drivers.NetworkDriverReturns(networkDriver)
		drivers.InstanceDriverReturns(instanceDriver)
		drivers.RunContextReturns(driver.NewRunContext("/tmp/sles.raw", resources.ImageProperties{}))

		c = builder.Config{
			Image: resources.ImageProperties{
				Name:               "sles-15",
				VirtualizationType: resources.HvmVirtualization,
			},
			LauncherImage: "ami-launcher",
			Policy:        fastPolicy,
		}
	})

	newBuilder := func() *builder.ImageBuilder {
		return builder.NewImageBuilder(GinkgoWriter, drivers, nil, c)
	}

	It("refuses a name that is already taken and still runs the cleaner", func() {
		imageDriver.ExistsReturns(true, nil)

		_, err := newBuilder().CreateImage(ctx, "/tmp/sles.raw")

		var preflightErr resources.PreflightError
		Expect(errors.As(err, &preflightErr)).To(BeTrue())
		Expect(imageDriver.ExistsCallCount()).To(Equal(1))
		_, name := imageDriver.ExistsArgsForCall(0)
		Expect(name).To(Equal("sles-15"))

		Expect(drivers.InstanceDriverCallCount()).To(Equal(0))
		Expect(cleaner.CleanupCallCount()).To(Equal(1))
		_, endConnection := cleaner.CleanupArgsForCall(0)
		Expect(endConnection).To(BeTrue())
	})

	It("returns the original error when the cleaner fails too", func() {
		imageDriver.ExistsReturns(false, errors.New("describe images failed"))
		cleaner.CleanupReturns(errors.New("terminate failed"))

		b := newBuilder()
		_, err := b.CreateSnapshot(ctx, "/tmp/sles.raw")

		Expect(err).To(MatchError("describe images failed"))
		Expect(b.State()).To(Equal(builder.FailedState))
	})

	It("validates security groups of the default vpc", func() {
		c.Network = resources.NetworkOptions{SecurityGroupIDs: []string{"sg-1"}}
		networkDriver.ValidateReturns(resources.PreflightError{Reason: "security group sg-1 does not exist"})

		_, err := newBuilder().CreateImage(ctx, "/tmp/sles.raw")
		Expect(err).To(MatchError(ContainSubstring("sg-1 does not exist")))

		Expect(networkDriver.ValidateCallCount()).To(Equal(1))
		_, network := networkDriver.ValidateArgsForCall(0)
		Expect(network.SubnetID).To(BeEmpty())
		Expect(network.SecurityGroupIDs).To(Equal([]string{"sg-1"}))
		Expect(networkDriver.SelectZoneCallCount()).To(Equal(0))
	})

	It("skips network validation without subnet or security groups", func() {
		imageDriver.DescribeReturns(resources.ImageInfo{Handle: resources.Handle{ID: "ami-launcher"}, VirtualizationType: resources.ParaVirtualization}, nil)

		_, err := newBuilder().CreateImageUseRootSwap(ctx, "/tmp/sles.raw")
		Expect(err).To(MatchError(ContainSubstring("root swap is not possible")))

		Expect(networkDriver.ValidateCallCount()).To(Equal(0))
		_, launcher := imageDriver.DescribeArgsForCall(0)
		Expect(launcher).To(Equal("ami-launcher"))
		Expect(instanceDriver.LaunchCallCount()).To(Equal(0))
	})
})

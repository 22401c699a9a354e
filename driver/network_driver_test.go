package driver_test

import (
	"context"

	"ec2uploadimg/driver"
	"ec2uploadimg/resources"
	"ec2uploadimg/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDKNetworkDriver", func() {
	var (
		ctx     context.Context
		compute *test_helpers.FakeCompute
		network *driver.SDKNetworkDriver
	)

	BeforeEach(func() {
		ctx = context.Background()
		compute = test_helpers.NewFakeCompute()
		compute.AddSubnet("subnet-1", "us-east-1b")
		compute.AddSecurityGroup("sg-1")
		network = driver.NewNetworkDriver(GinkgoWriter, compute)
	})

	Describe("Validate", func() {
		It("accepts existing references", func() {
			Expect(network.Validate(ctx, resources.NetworkOptions{
				SubnetID:         "subnet-1",
				SecurityGroupIDs: []string{"sg-1"},
			})).To(Succeed())
		})

		It("accepts the default network", func() {
			Expect(network.Validate(ctx, resources.NetworkOptions{})).To(Succeed())
			Expect(compute.Calls("DescribeSubnets")).To(BeZero())
		})

		It("rejects a missing subnet", func() {
			err := network.Validate(ctx, resources.NetworkOptions{SubnetID: "subnet-2"})
			Expect(err).To(MatchError(resources.PreflightError{Reason: "subnet subnet-2 does not exist"}))
		})

		It("rejects a missing security group", func() {
			err := network.Validate(ctx, resources.NetworkOptions{SecurityGroupIDs: []string{"sg-1", "sg-2"}})
			Expect(err).To(BeAssignableToTypeOf(resources.PreflightError{}))
		})
	})

	Describe("SelectZone", func() {
		It("uses the last available zone", func() {
			zone, err := network.SelectZone(ctx, resources.NetworkOptions{})
			Expect(err).ToNot(HaveOccurred())
			Expect(zone).To(Equal("us-east-1c"))
		})

		It("uses the zone of the subnet", func() {
			zone, err := network.SelectZone(ctx, resources.NetworkOptions{SubnetID: "subnet-1"})
			Expect(err).ToNot(HaveOccurred())
			Expect(zone).To(Equal("us-east-1b"))
		})

		It("fails without any available zone", func() {
			compute.SetZones()
			_, err := network.SelectZone(ctx, resources.NetworkOptions{})
			Expect(err).To(MatchError("finding any available availability zones"))
		})
	})
})

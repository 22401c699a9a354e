package reqinputs_test

import (
	"ec2uploadimg/driver/reqinputs"
	"ec2uploadimg/resources"

	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("building inputs for register image", func() {
	var props resources.ImageProperties

	BeforeEach(func() {
		props = resources.ImageProperties{
			Name:               "some-image-name",
			Description:        "some-image-description",
			VirtualizationType: resources.HvmVirtualization,
			BackingStore:       resources.SSDBackingStore,
			RootVolumeSizeGB:   10,
		}
	})

	Describe("NewRegisterImageInput", func() {
		It("builds valid request input for an HVM image", func() {
			input := reqinputs.NewRegisterImageInput("some-snapshot-id", props)
			Expect(input).To(BeAssignableToTypeOf(&ec2.RegisterImageInput{}))
			Expect(*input.Architecture).To(Equal(resources.DefaultImageArchitecture))
			Expect(*input.Description).To(Equal("some-image-description"))
			Expect(*input.VirtualizationType).To(Equal(resources.HvmVirtualization))
			Expect(*input.Name).To(Equal("some-image-name"))
			Expect(*input.RootDeviceName).To(Equal("/dev/sda1"))
			Expect(input.BlockDeviceMappings).To(HaveLen(1))
			Expect(*input.BlockDeviceMappings[0].DeviceName).To(Equal("/dev/sda1"))
			Expect(*input.BlockDeviceMappings[0].Ebs.SnapshotId).To(Equal("some-snapshot-id"))
			Expect(*input.BlockDeviceMappings[0].Ebs.DeleteOnTermination).To(BeTrue())
			Expect(*input.BlockDeviceMappings[0].Ebs.VolumeType).To(Equal("gp2"))
			Expect(*input.BlockDeviceMappings[0].Ebs.VolumeSize).To(Equal(int64(10)))
			Expect(input.KernelId).To(BeNil())
			Expect(input.SriovNetSupport).To(BeNil())
			Expect(input.EnaSupport).To(BeNil())
		})

		It("roots paravirtual images at /dev/sda", func() {
			props.VirtualizationType = resources.ParaVirtualization
			input := reqinputs.NewRegisterImageInput("some-snapshot-id", props)
			Expect(*input.RootDeviceName).To(Equal("/dev/sda"))
			Expect(*input.BlockDeviceMappings[0].DeviceName).To(Equal("/dev/sda"))
		})

		It("uses standard volumes for the magnetic backing store", func() {
			props.BackingStore = resources.MagneticBackingStore
			input := reqinputs.NewRegisterImageInput("some-snapshot-id", props)
			Expect(*input.BlockDeviceMappings[0].Ebs.VolumeType).To(Equal("standard"))
		})

		It("passes kernel and network support options through", func() {
			props.BootKernel = "aki-12345"
			props.SriovNetSupport = "simple"
			props.EnaSupport = true
			props.Architecture = "arm64"

			input := reqinputs.NewRegisterImageInput("some-snapshot-id", props)
			Expect(*input.KernelId).To(Equal("aki-12345"))
			Expect(*input.SriovNetSupport).To(Equal("simple"))
			Expect(*input.EnaSupport).To(BeTrue())
			Expect(*input.Architecture).To(Equal("arm64"))
		})
	})
})

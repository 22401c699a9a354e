package driver_test

import (
	"context"
	"errors"

	"ec2uploadimg/driver"
	"ec2uploadimg/resources"
	"ec2uploadimg/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDKSnapshotDriver", func() {
	var (
		ctx       context.Context
		compute   *test_helpers.FakeCompute
		snapshots *driver.SDKSnapshotDriver
		volume    resources.Handle
	)

	BeforeEach(func() {
		ctx = context.Background()
		compute = test_helpers.NewFakeCompute()
		runCtx := driver.NewRunContext("/tmp/image.raw", resources.ImageProperties{})
		snapshots = driver.NewSnapshotDriver(GinkgoWriter, compute, fastPolicy)

		var err error
		volume, err = driver.NewVolumeDriver(GinkgoWriter, compute, runCtx, fastPolicy).
			Create(ctx, resources.VolumeDriverConfig{SizeGB: 10, AvailabilityZone: "us-east-1a"})
		Expect(err).ToNot(HaveOccurred())
	})

	It("waits for the snapshot to complete", func() {
		compute.Lag = 3

		snapshot, err := snapshots.Create(ctx, volume, "ec2uploadimg root volume")
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.Kind).To(Equal(resources.SnapshotKind))
		Expect(snapshot.State).To(Equal(resources.SnapshotCompletedStatus))
	})

	It("gives snapshots twice the per-attempt wait of other resources", func() {
		singleAttempt := resources.WaitPolicy{PollInterval: fastPolicy.PollInterval, MaxWaitCyclesPerAttempt: 5, MaxAttempts: 1}
		snapshots = driver.NewSnapshotDriver(GinkgoWriter, compute, singleAttempt)
		compute.Lag = 8

		_, err := snapshots.Create(ctx, volume, "ec2uploadimg root volume")
		Expect(err).ToNot(HaveOccurred())
	})

	It("reports a snapshot that never completes", func() {
		compute.FreezeNext("snapshot")

		snapshot, err := snapshots.Create(ctx, volume, "ec2uploadimg root volume")
		var timeoutErr resources.ProvisioningTimeoutError
		Expect(errors.As(err, &timeoutErr)).To(BeTrue())
		Expect(timeoutErr.ResourceID).To(Equal(snapshot.ID))
		Expect(timeoutErr.LastState).To(Equal(resources.SnapshotPendingStatus))
	})
})

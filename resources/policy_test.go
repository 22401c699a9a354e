package resources_test

import (
	"time"

	"ec2uploadimg/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WaitPolicy", func() {
	Describe("NewWaitPolicy", func() {
		It("derives the cycles per attempt from the operation timeout", func() {
			p := resources.NewWaitPolicy(300*time.Second, 10*time.Second, 2)
			Expect(p.MaxWaitCyclesPerAttempt).To(Equal(30))
			Expect(p.MaxAttempts).To(Equal(2))
			Expect(p.AttemptTimeout()).To(Equal(300 * time.Second))
		})

		It("never produces less than one cycle", func() {
			p := resources.NewWaitPolicy(time.Second, 10*time.Second, 1)
			Expect(p.MaxWaitCyclesPerAttempt).To(Equal(1))
		})

		It("falls back to the default poll interval", func() {
			p := resources.NewWaitPolicy(time.Minute, 0, 1)
			Expect(p.PollInterval).To(Equal(resources.DefaultPollInterval))
		})
	})

	Describe("Validate", func() {
		It("rejects less than one attempt", func() {
			p := resources.WaitPolicy{PollInterval: time.Second, MaxWaitCyclesPerAttempt: 1}
			Expect(p.Validate()).To(MatchError("wait attempts must be at least 1"))
		})

		It("accepts a complete policy", func() {
			p := resources.WaitPolicy{PollInterval: time.Second, MaxWaitCyclesPerAttempt: 1, MaxAttempts: 1}
			Expect(p.Validate()).To(Succeed())
		})
	})

	Describe("Extended", func() {
		It("multiplies the per-attempt cycles without touching the original", func() {
			p := resources.WaitPolicy{PollInterval: time.Second, MaxWaitCyclesPerAttempt: 3, MaxAttempts: 2}
			extended := p.Extended(2)
			Expect(extended.MaxWaitCyclesPerAttempt).To(Equal(6))
			Expect(extended.MaxAttempts).To(Equal(2))
			Expect(p.MaxWaitCyclesPerAttempt).To(Equal(3))
		})
	})
})

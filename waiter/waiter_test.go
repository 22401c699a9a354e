package waiter_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type lockedBuffer struct {
	sync.Mutex
	data []byte
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *lockedBuffer) String() string {
	b.Lock()
	defer b.Unlock()
	return string(b.data)
}

// sequenceFetcher reports the given states in order, repeating the last one
func sequenceFetcher(calls *int, states ...string) waiter.StatusFetcher {
	return func(_ context.Context, _ string) (string, error) {
		i := *calls
		*calls++
		if i >= len(states) {
			return states[len(states)-1], nil
		}
		return states[i], nil
	}
}

var _ = Describe("Waiter", func() {
	var (
		ctx   context.Context
		calls int
		cfg   waiter.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		calls = 0
		cfg = waiter.Config{
			ResourceID:    "vol-123",
			Kind:          resources.VolumeKind,
			DesiredStatus: resources.VolumeAvailableStatus,
			Policy: resources.WaitPolicy{
				PollInterval:            time.Millisecond,
				MaxWaitCyclesPerAttempt: 3,
				MaxAttempts:             2,
			},
		}
	})

	Describe("Wait", func() {
		It("returns immediately once the state matches", func() {
			cfg.Policy.PollInterval = time.Hour

			result, err := waiter.Wait(ctx, sequenceFetcher(&calls, "available"), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Reached).To(BeTrue())
			Expect(result.Attempts).To(Equal(1))
			Expect(calls).To(Equal(1))
		})

		It("keeps polling until the state matches", func() {
			result, err := waiter.Wait(ctx, sequenceFetcher(&calls, "creating", "creating", "available"), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Reached).To(BeTrue())
			Expect(result.State).To(Equal("available"))
			Expect(calls).To(Equal(3))
		})

		It("gives up after the per-attempt cycles without an error", func() {
			result, err := waiter.Wait(ctx, sequenceFetcher(&calls, "creating"), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Reached).To(BeFalse())
			Expect(result.State).To(Equal("creating"))
			Expect(calls).To(Equal(4))
		})

		It("returns the fetch error", func() {
			fetch := func(context.Context, string) (string, error) {
				return "", errors.New("UnauthorizedOperation")
			}

			_, err := waiter.Wait(ctx, fetch, cfg)
			Expect(err).To(MatchError("UnauthorizedOperation"))
		})

		It("stops early on a failure state", func() {
			cfg.FailureStatuses = []string{"error"}

			_, err := waiter.Wait(ctx, sequenceFetcher(&calls, "creating", "error"), cfg)
			Expect(err).To(MatchError(waiter.UnexpectedStatusError{
				ResourceID:    "vol-123",
				Status:        "error",
				DesiredStatus: "available",
			}))
			Expect(calls).To(Equal(2))
		})

		It("rejects an invalid policy", func() {
			cfg.Policy.MaxAttempts = 0

			_, err := waiter.Wait(ctx, sequenceFetcher(&calls, "available"), cfg)
			Expect(err).To(MatchError(ContainSubstring("wait attempts must be at least 1")))
			Expect(calls).To(BeZero())
		})

		It("honours context cancellation", func() {
			cfg.Policy.PollInterval = time.Hour
			cancelCtx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := waiter.Wait(cancelCtx, sequenceFetcher(&calls, "creating"), cfg)
			Expect(err).To(MatchError(context.Canceled))
		})

		It("prints progress while blocked and stops afterwards", func() {
			progress := &lockedBuffer{}
			cfg.Progress = progress
			cfg.Policy.MaxWaitCyclesPerAttempt = 20

			_, err := waiter.Wait(ctx, sequenceFetcher(&calls, "creating"), cfg)
			Expect(err).ToNot(HaveOccurred())

			printed := progress.String()
			Expect(printed).To(MatchRegexp(`^\.+$`))
			Consistently(progress.String, 20*time.Millisecond).Should(Equal(printed))
		})
	})

	Describe("WaitWithEscalation", func() {
		It("fails without an error once all attempts are exhausted", func() {
			result, err := waiter.WaitWithEscalation(ctx, sequenceFetcher(&calls, "creating"), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Reached).To(BeFalse())
			Expect(result.Attempts).To(Equal(2))
			Expect(calls).To(Equal(8))

			timeoutErr := result.TimeoutError(cfg)
			Expect(timeoutErr).To(BeAssignableToTypeOf(resources.ProvisioningTimeoutError{}))
			Expect(timeoutErr.Error()).To(ContainSubstring("vol-123"))
			Expect(timeoutErr.Error()).To(ContainSubstring("2 attempts"))
		})

		It("succeeds in a later attempt", func() {
			states := []string{"creating", "creating", "creating", "creating", "creating", "available"}

			result, err := waiter.WaitWithEscalation(ctx, sequenceFetcher(&calls, states...), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Reached).To(BeTrue())
			Expect(result.Attempts).To(Equal(2))
			Expect(result.TimeoutError(cfg)).To(Succeed())
		})

		It("does not start another attempt after success", func() {
			result, err := waiter.WaitWithEscalation(ctx, sequenceFetcher(&calls, "available"), cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Attempts).To(Equal(1))
			Expect(calls).To(Equal(1))
		})
	})
})

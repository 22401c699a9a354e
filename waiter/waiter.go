package waiter

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"ec2uploadimg/resources"
)

// StatusFetcher returns the current state of the resource with the given id.
// Fetchers report resources the API does not know about yet as an unknown state
// rather than an error; any returned error ends the wait.
type StatusFetcher func(ctx context.Context, resourceID string) (string, error)

type Config struct {
	ResourceID    string
	Kind          resources.Kind
	DesiredStatus string

	// FailureStatuses end the wait early, the resource will never reach DesiredStatus
	FailureStatuses []string

	Policy resources.WaitPolicy

	// Progress receives a dot every poll interval while a wait blocks, nil disables it
	Progress io.Writer
	Logger   *log.Logger
}

// Result describes how a wait ended. An unreached target is not an error.
type Result struct {
	Reached  bool
	State    string
	Attempts int
	Elapsed  time.Duration
}

// TimeoutError converts an unreached result into the error a caller surfaces
func (r Result) TimeoutError(c Config) error {
	if r.Reached {
		return nil
	}
	return resources.ProvisioningTimeoutError{
		ResourceID:    c.ResourceID,
		Kind:          c.Kind,
		ExpectedState: c.DesiredStatus,
		LastState:     r.State,
		Attempts:      r.Attempts,
		Elapsed:       r.Elapsed,
	}
}

// UnexpectedStatusError is returned when a resource enters one of the configured failure states
type UnexpectedStatusError struct {
	ResourceID    string
	Status        string
	DesiredStatus string
}

func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("resource %s entered state %q while waiting for %q", e.ResourceID, e.Status, e.DesiredStatus)
}

// Wait runs a single attempt: the resource is polled right away and then once per
// poll interval, for at most Policy.MaxWaitCyclesPerAttempt intervals.
func Wait(ctx context.Context, fetch StatusFetcher, c Config) (Result, error) {
	if err := c.Policy.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid wait policy for %s: %w", c.ResourceID, err)
	}

	logger := c.logger()
	startTime := time.Now()
	result := Result{Attempts: 1}

	stopProgress := startProgress(ctx, c.Progress, c.Policy.PollInterval)
	defer stopProgress()

	ticker := time.NewTicker(c.Policy.PollInterval)
	defer ticker.Stop()

	for cycle := 0; ; cycle++ {
		state, err := fetch(ctx, c.ResourceID)
		result.Elapsed = time.Since(startTime)
		if err != nil {
			logger.Printf("describe of %s encountered error %s\n", c.ResourceID, err)
			return result, err
		}
		result.State = state

		if state == c.DesiredStatus {
			logger.Printf("%s matches desired status %s\n", c.ResourceID, c.DesiredStatus)
			result.Reached = true
			return result, nil
		}

		for _, failure := range c.FailureStatuses {
			if state == failure {
				return result, UnexpectedStatusError{ResourceID: c.ResourceID, Status: state, DesiredStatus: c.DesiredStatus}
			}
		}

		if cycle >= c.Policy.MaxWaitCyclesPerAttempt {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticker.C:
		}
	}
}

// WaitWithEscalation repeats Wait until the target state is observed or
// Policy.MaxAttempts attempts have run
func WaitWithEscalation(ctx context.Context, fetch StatusFetcher, c Config) (Result, error) {
	logger := c.logger()
	logger.Printf("waiting on %s to be desired status %s\n", c.ResourceID, c.DesiredStatus)

	total := Result{}
	for attempt := 1; attempt <= c.Policy.MaxAttempts; attempt++ {
		r, err := Wait(ctx, fetch, c)
		total.Attempts = attempt
		total.State = r.State
		total.Elapsed += r.Elapsed
		if err != nil {
			return total, err
		}
		if r.Reached {
			total.Reached = true
			return total, nil
		}
		if attempt < c.Policy.MaxAttempts {
			logger.Printf("%s is still %q after attempt %d of %d, waiting again\n", c.ResourceID, r.State, attempt, c.Policy.MaxAttempts)
		}
	}

	logger.Printf("timed out waiting for %s to be %s\n", c.ResourceID, c.DesiredStatus)
	return total, nil
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard, "", 0)
}

// startProgress writes a dot to w every interval until the returned stop function is called.
// stop blocks until the writer goroutine has exited.
func startProgress(ctx context.Context, w io.Writer, interval time.Duration) func() {
	if w == nil {
		return func() {}
	}

	progressCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-progressCtx.Done():
				return
			case <-ticker.C:
				_, _ = io.WriteString(w, ".")
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

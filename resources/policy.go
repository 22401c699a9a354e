package resources

import (
	"errors"
	"time"
)

const (
	DefaultPollInterval     = 10 * time.Second
	DefaultOperationTimeout = 300 * time.Second
)

// WaitPolicy bounds how long a resource transition may take. One attempt polls at
// PollInterval for at most MaxWaitCyclesPerAttempt cycles; a transition is given up
// after MaxAttempts attempts.
type WaitPolicy struct {
	PollInterval            time.Duration
	MaxWaitCyclesPerAttempt int
	MaxAttempts             int
}

// NewWaitPolicy derives the per-attempt cycle count from an operation timeout
func NewWaitPolicy(operationTimeout time.Duration, pollInterval time.Duration, attempts int) WaitPolicy {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	cycles := int(operationTimeout / pollInterval)
	if cycles < 1 {
		cycles = 1
	}
	return WaitPolicy{
		PollInterval:            pollInterval,
		MaxWaitCyclesPerAttempt: cycles,
		MaxAttempts:             attempts,
	}
}

func (p WaitPolicy) Validate() error {
	if p.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if p.MaxWaitCyclesPerAttempt < 1 {
		return errors.New("wait cycles per attempt must be at least 1")
	}
	if p.MaxAttempts < 1 {
		return errors.New("wait attempts must be at least 1")
	}
	return nil
}

// AttemptTimeout is the longest a single wait attempt blocks
func (p WaitPolicy) AttemptTimeout() time.Duration {
	return p.PollInterval * time.Duration(p.MaxWaitCyclesPerAttempt)
}

// Extended returns a copy of the policy whose attempts are factor times longer
func (p WaitPolicy) Extended(factor int) WaitPolicy {
	if factor < 1 {
		factor = 1
	}
	p.MaxWaitCyclesPerAttempt *= factor
	return p
}

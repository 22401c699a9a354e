package resources

import (
	"fmt"
	"strings"
	"time"
)

// PreflightError is returned before any resource has been provisioned
type PreflightError struct {
	Reason string
}

func (e PreflightError) Error() string {
	return fmt.Sprintf("preflight check failed: %s", e.Reason)
}

// ProvisioningTimeoutError is returned when a resource did not reach its expected
// state within the wait policy
type ProvisioningTimeoutError struct {
	ResourceID    string
	Kind          Kind
	ExpectedState string
	LastState     string
	Attempts      int
	Elapsed       time.Duration
}

func (e ProvisioningTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s (%d attempts) waiting for %s %s to be %s, last seen %q",
		e.Elapsed.Round(time.Millisecond), e.Attempts, e.Kind, e.ResourceID, e.ExpectedState, e.LastState)
}

// RemoteExecutionError is returned when a remote command reports output on its error stream
type RemoteExecutionError struct {
	Command string
	Stderr  string
}

func (e RemoteExecutionError) Error() string {
	return fmt.Sprintf("execution of %q failed with the following error\n%s", e.Command, e.Stderr)
}

// NotConnectedError is returned when a command is run on a closed remote channel
type NotConnectedError struct {
	Command string
}

func (e NotConnectedError) Error() string {
	return fmt.Sprintf("no ssh connection established, cannot execute %q", e.Command)
}

// DeviceResolutionError is returned when an attached volume has no usable device in the guest
type DeviceResolutionError struct {
	RequestedDevice string
	Candidates      []string
}

func (e DeviceResolutionError) Error() string {
	return fmt.Sprintf("unable to find a device in the helper instance for %s, tried: %s",
		e.RequestedDevice, strings.Join(e.Candidates, ", "))
}

// UnpackError is returned when no raw disk image is found in the uploaded source
type UnpackError struct {
	FileName string
	Entries  []string
}

func (e UnpackError) Error() string {
	return fmt.Sprintf("unable to find raw image file with .raw extension in %s", e.FileName)
}

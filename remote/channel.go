package remote

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"ec2uploadimg/resources"
	"ec2uploadimg/waiter"
)

const (
	privilegedUser = "root"

	addressAssigned   = "assigned"
	addressUnassigned = "unassigned"
)

// AddressResolver returns the address of the host to connect to, or an empty string
// while the host has not been assigned one yet
type AddressResolver func(ctx context.Context) (string, error)

// Channel holds the single remote shell session of a run
type Channel struct {
	transport Transport
	creds     Credentials
	logger    *log.Logger
	progress  io.Writer

	connected bool
	address   string
}

func NewChannel(logDest io.Writer, transport Transport, creds Credentials) *Channel {
	return &Channel{
		transport: transport,
		creds:     creds,
		logger:    log.New(logDest, "RemoteChannel ", log.LstdFlags),
		progress:  logDest,
	}
}

// Connect waits for the host to expose an address and then retries the ssh handshake
// every poll interval until it succeeds or one attempt of the policy has elapsed
func (c *Channel) Connect(ctx context.Context, resolve AddressResolver, policy resources.WaitPolicy) error {
	if c.connected {
		return nil
	}

	connectStartTime := time.Now()
	defer func(startTime time.Time) {
		c.logger.Printf("completed Connect() in %f minutes\n", time.Since(startTime).Minutes())
	}(connectStartTime)

	address := ""
	fetchAddress := func(ctx context.Context, _ string) (string, error) {
		var err error
		address, err = resolve(ctx)
		if err != nil {
			return "", err
		}
		if address == "" {
			return addressUnassigned, nil
		}
		return addressAssigned, nil
	}
	waiterConfig := waiter.Config{
		ResourceID:    "instance address",
		Kind:          resources.InstanceKind,
		DesiredStatus: addressAssigned,
		Policy:        policy,
		Logger:        c.logger,
	}
	result, err := waiter.WaitWithEscalation(ctx, fetchAddress, waiterConfig)
	if err != nil {
		return fmt.Errorf("resolving instance address: %w", err)
	}
	if err = result.TimeoutError(waiterConfig); err != nil {
		return err
	}

	c.logger.Printf("connecting to %s as %s\n", address, c.creds.User)

	deadline := time.Now().Add(policy.AttemptTimeout())
	for {
		err = c.transport.Connect(ctx, address, c.creds)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("connecting to %s: %w", address, err)
		}
		c.logger.Printf("unable to connect to %s, retrying: %s\n", address, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(policy.PollInterval):
		}
	}

	c.connected = true
	c.address = address
	return nil
}

// Run executes the command with sudo unless logged in as root and returns its output
func (c *Channel) Run(ctx context.Context, command string) (string, error) {
	if !c.connected {
		return "", resources.NotConnectedError{Command: command}
	}

	if c.creds.User != privilegedUser {
		command = "sudo " + command
	}
	c.logger.Printf("executing %q\n", command)

	stdout, stderr, err := c.transport.Exec(ctx, command)
	if strings.TrimSpace(stderr) != "" {
		return stdout, resources.RemoteExecutionError{Command: command, Stderr: stderr}
	}
	if err != nil {
		output := strings.TrimSpace(stdout)
		if output == "" {
			output = err.Error()
		}
		return stdout, resources.RemoteExecutionError{Command: command, Stderr: output}
	}

	return stdout, nil
}

// Upload copies a local file to the host, logging progress in 10% steps
func (c *Channel) Upload(ctx context.Context, localPath string, remotePath string) error {
	if !c.connected {
		return resources.NotConnectedError{Command: fmt.Sprintf("upload %s", localPath)}
	}

	uploadStartTime := time.Now()
	defer func(startTime time.Time) {
		c.logger.Printf("completed Upload() in %f minutes\n", time.Since(startTime).Minutes())
	}(uploadStartTime)

	c.logger.Printf("uploading %s to %s:%s\n", localPath, c.address, remotePath)
	err := c.transport.UploadFile(ctx, localPath, remotePath, NewProgressReporter(c.progress, 10))
	if err != nil {
		return fmt.Errorf("uploading %s: %w", localPath, err)
	}
	return nil
}

// Close is safe to call any number of times, connected or not
func (c *Channel) Close() error {
	if !c.connected {
		return nil
	}
	c.connected = false
	c.address = ""

	if err := c.transport.Close(); err != nil {
		return fmt.Errorf("closing ssh connection: %w", err)
	}
	return nil
}

func (c *Channel) Connected() bool {
	return c.connected
}

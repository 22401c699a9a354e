package remote_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"ec2uploadimg/remote"
	"ec2uploadimg/remote/remotefakes"
	"ec2uploadimg/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Channel", func() {
	var (
		ctx       context.Context
		transport *remotefakes.FakeTransport
		channel   *remote.Channel
		creds     remote.Credentials
		policy    resources.WaitPolicy
		resolve   remote.AddressResolver
	)

	BeforeEach(func() {
		ctx = context.Background()
		transport = &remotefakes.FakeTransport{}
		creds = remote.Credentials{User: "ec2-user", PrivateKeyPath: "/tmp/key.pem"}
		policy = resources.WaitPolicy{
			PollInterval:            time.Millisecond,
			MaxWaitCyclesPerAttempt: 50,
			MaxAttempts:             1,
		}
		resolve = func(context.Context) (string, error) { return "10.0.0.5", nil }
		channel = remote.NewChannel(io.Discard, transport, creds)
	})

	Describe("Connect", func() {
		It("waits for the address to be assigned before connecting", func() {
			lookups := 0
			resolve = func(context.Context) (string, error) {
				lookups++
				if lookups < 3 {
					return "", nil
				}
				return "54.1.2.3", nil
			}

			Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())
			Expect(lookups).To(Equal(3))
			Expect(transport.ConnectCallCount()).To(Equal(1))

			_, address, passedCreds := transport.ConnectArgsForCall(0)
			Expect(address).To(Equal("54.1.2.3"))
			Expect(passedCreds).To(Equal(creds))
			Expect(channel.Connected()).To(BeTrue())
		})

		It("retries the handshake until it succeeds", func() {
			transport.ConnectReturnsOnCall(0, errors.New("connection refused"))
			transport.ConnectReturnsOnCall(1, errors.New("connection refused"))
			transport.ConnectReturnsOnCall(2, nil)

			Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())
			Expect(transport.ConnectCallCount()).To(Equal(3))
		})

		It("gives up on the handshake after the attempt timeout", func() {
			policy.MaxWaitCyclesPerAttempt = 3
			transport.ConnectReturns(errors.New("connection refused"))

			err := channel.Connect(ctx, resolve, policy)
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(channel.Connected()).To(BeFalse())
		})

		It("fails when no address is ever assigned", func() {
			policy.MaxWaitCyclesPerAttempt = 2
			resolve = func(context.Context) (string, error) { return "", nil }

			err := channel.Connect(ctx, resolve, policy)
			var timeoutErr resources.ProvisioningTimeoutError
			Expect(errors.As(err, &timeoutErr)).To(BeTrue())
			Expect(transport.ConnectCallCount()).To(BeZero())
		})
	})

	Describe("Run", func() {
		It("fails fast when not connected", func() {
			_, err := channel.Run(ctx, "ls /dev")
			Expect(err).To(MatchError(resources.NotConnectedError{Command: "ls /dev"}))
			Expect(transport.ExecCallCount()).To(BeZero())
		})

		Context("when connected", func() {
			BeforeEach(func() {
				Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())
			})

			It("runs commands through sudo", func() {
				transport.ExecReturns("xvda\nxvdf\n", "", nil)

				out, err := channel.Run(ctx, "ls /dev")
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal("xvda\nxvdf\n"))

				_, command := transport.ExecArgsForCall(0)
				Expect(command).To(Equal("sudo ls /dev"))
			})

			It("reports output on the error stream as a failure", func() {
				transport.ExecReturns("", "mount: unknown filesystem\n", nil)

				_, err := channel.Run(ctx, "mount /dev/xvdf1 /mnt")
				Expect(err).To(MatchError(resources.RemoteExecutionError{
					Command: "sudo mount /dev/xvdf1 /mnt",
					Stderr:  "mount: unknown filesystem\n",
				}))
			})

			It("reports a failing exit status with the command output", func() {
				transport.ExecReturns("mkfs: cannot open /dev/xvdf1\n", "", errors.New("Process exited with status 1"))

				_, err := channel.Run(ctx, "mkfs -t ext3 /dev/xvdf1")
				var execErr resources.RemoteExecutionError
				Expect(errors.As(err, &execErr)).To(BeTrue())
				Expect(execErr.Stderr).To(Equal("mkfs: cannot open /dev/xvdf1"))
			})
		})

		It("does not use sudo when logged in as root", func() {
			channel = remote.NewChannel(io.Discard, transport, remote.Credentials{User: "root"})
			Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())

			_, err := channel.Run(ctx, "ls /dev")
			Expect(err).ToNot(HaveOccurred())

			_, command := transport.ExecArgsForCall(0)
			Expect(command).To(Equal("ls /dev"))
		})
	})

	Describe("Upload", func() {
		It("fails fast when not connected", func() {
			err := channel.Upload(ctx, "/tmp/image.raw.xz", "/mnt/image.raw.xz")
			Expect(err).To(BeAssignableToTypeOf(resources.NotConnectedError{}))
		})

		It("reports progress while transferring", func() {
			progress := &bytes.Buffer{}
			channel = remote.NewChannel(progress, transport, creds)
			Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())

			transport.UploadFileStub = func(_ context.Context, _ string, _ string, report remote.ProgressFunc) error {
				for sent := int64(0); sent <= 100; sent += 25 {
					report(sent, 100)
				}
				return nil
			}

			Expect(channel.Upload(ctx, "/tmp/image.raw.xz", "/mnt/image.raw.xz")).To(Succeed())
			_, local, remotePath, _ := transport.UploadFileArgsForCall(0)
			Expect(local).To(Equal("/tmp/image.raw.xz"))
			Expect(remotePath).To(Equal("/mnt/image.raw.xz"))
			Expect(progress.String()).To(ContainSubstring("20% 50% 70% 100% "))
		})
	})

	Describe("Close", func() {
		It("is safe when never connected", func() {
			Expect(channel.Close()).To(Succeed())
			Expect(transport.CloseCallCount()).To(BeZero())
		})

		It("only closes the transport once", func() {
			Expect(channel.Connect(ctx, resolve, policy)).To(Succeed())

			Expect(channel.Close()).To(Succeed())
			Expect(channel.Close()).To(Succeed())
			Expect(transport.CloseCallCount()).To(Equal(1))
			Expect(channel.Connected()).To(BeFalse())
		})
	})
})

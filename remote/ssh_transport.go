package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const (
	sshPort           = "22"
	sshDefaultTimeout = 10 * time.Second
)

var (
	ErrNotConnected  = errors.New("ssh transport is not connected")
	ErrReadingKey    = errors.New("failed to read the ssh private key")
	ErrParsingKey    = errors.New("failed to parse the ssh private key")
	ErrSSHFailedDial = errors.New("failed to establish TCP/22 connection")
	ErrSessionInit   = errors.New("failed to begin SSH session")
)

var _ Transport = &SSHTransport{}

// SSHTransport executes commands and copies files over a single ssh connection.
// Commands run on a pseudo terminal so sudo works on hosts that require a tty.
type SSHTransport struct {
	client *ssh.Client
}

func NewSSHTransport() *SSHTransport {
	return &SSHTransport{}
}

func (t *SSHTransport) Connect(ctx context.Context, address string, creds Credentials) error {
	privateKey, err := os.ReadFile(creds.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingKey, err)
	}
	signer, err := ssh.ParsePrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParsingKey, err)
	}

	config := &ssh.ClientConfig{
		User: creds.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		// the helper instance is freshly launched, there is no known host key to compare against
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         sshDefaultTimeout,
	}

	target := net.JoinHostPort(address, sshPort)
	dialer := net.Dialer{Timeout: sshDefaultTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSSHFailedDial, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, target, config)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrSSHFailedDial, err)
	}

	t.client = ssh.NewClient(sshConn, chans, reqs)
	return nil
}

func (t *SSHTransport) Exec(ctx context.Context, command string) (string, string, error) {
	if t.client == nil {
		return "", "", ErrNotConnected
	}

	session, err := t.client.NewSession()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSessionInit, err)
	}
	defer session.Close() //nolint:errcheck

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err = session.RequestPty("xterm", 40, 200, modes); err != nil {
		return "", "", fmt.Errorf("requesting pty: %w", err)
	}

	stdout := new(bytes.Buffer)
	session.Stdout = stdout
	stderr := new(bytes.Buffer)
	session.Stderr = stderr

	done := make(chan error, 1)
	go func() {
		done <- session.Run(command)
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return stdout.String(), stderr.String(), ctx.Err()
	case err = <-done:
	}

	if err != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("running %q: %w", command, err)
	}
	return stdout.String(), stderr.String(), nil
}

func (t *SSHTransport) UploadFile(ctx context.Context, localPath string, remotePath string, progress ProgressFunc) error {
	if t.client == nil {
		return ErrNotConnected
	}

	local, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer local.Close() //nolint:errcheck

	info, err := local.Stat()
	if err != nil {
		return fmt.Errorf("reading size of %s: %w", localPath, err)
	}

	sftpClient, err := sftp.NewClient(t.client)
	if err != nil {
		return fmt.Errorf("starting sftp session: %w", err)
	}
	defer sftpClient.Close() //nolint:errcheck

	remote, err := sftpClient.Create(remotePath)
	if err != nil {
		return fmt.Errorf("creating remote file %s: %w", remotePath, err)
	}
	defer remote.Close() //nolint:errcheck

	counter := &progressWriter{
		ctx:      ctx,
		writer:   remote,
		total:    info.Size(),
		progress: progress,
	}
	if _, err = io.Copy(counter, local); err != nil {
		return fmt.Errorf("copying %s to %s: %w", localPath, remotePath, err)
	}

	return remote.Close()
}

func (t *SSHTransport) Close() error {
	if t.client == nil {
		return nil
	}
	err := t.client.Close()
	t.client = nil
	return err
}

type progressWriter struct {
	ctx         context.Context
	writer      io.Writer
	transferred int64
	total       int64
	progress    ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := w.writer.Write(p)
	w.transferred += int64(n)
	if w.progress != nil {
		w.progress(w.transferred, w.total)
	}
	return n, err
}

package remote

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ProgressFunc is called while a file is transferred with the bytes sent so far
type ProgressFunc func(transferred int64, total int64)

// Credentials authenticate the login on the helper instance
type Credentials struct {
	User           string
	PrivateKeyPath string
}

// Transport is the raw command execution and file transfer connection to a host.
// Exec returns an error when the command could not be run or exited non-zero.
//
//counterfeiter:generate . Transport
type Transport interface {
	Connect(ctx context.Context, address string, creds Credentials) error
	Exec(ctx context.Context, command string) (string, string, error)
	UploadFile(ctx context.Context, localPath string, remotePath string, progress ProgressFunc) error
	Close() error
}

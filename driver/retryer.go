package driver

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// eventual consistency: a resource returned by a create call may not be visible to
// the next mutating call yet
var retryableMutationCodes = map[string]bool{
	"InvalidInstanceID.NotFound": true,
	"InvalidVolume.NotFound":     true,
	"InvalidSnapshot.NotFound":   true,
	"IncorrectState":             true,
}

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer retries mutating calls that fail because EC2 has not caught up with a
// resource that was just created or changed state
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

// ShouldRetry checks for eventual consistency errors on mutating operations before
// invoking DefaultRetryer.ShouldRetry. Describe calls are not retried for these, the
// waiter polls them anyway.
func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil && req.Operation != nil && !strings.HasPrefix(req.Operation.Name, "Describe") {
		if err, ok := req.Error.(awserr.Error); ok {
			if retryableMutationCodes[err.Code()] {
				return true
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}

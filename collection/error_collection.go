package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error collects the failures of a multi step teardown
type Error struct {
	sync.Mutex
	errs []error
}

func (e *Error) Add(err error) {
	if err == nil {
		return
	}

	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, err)
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

// Error returns nil when nothing was collected. The collected errors stay reachable
// through errors.Is and errors.As.
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errs) == 0 {
		return nil
	}

	return combined(append([]error(nil), e.errs...))
}

type combined []error

func (c combined) Error() string {
	msgs := make([]string, 0, len(c))
	for _, err := range c {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("encountered errors: \n %s", strings.Join(msgs, "\n"))
}

func (c combined) Unwrap() []error {
	return c
}

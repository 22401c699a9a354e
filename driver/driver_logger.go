package driver

import (
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go/aws"
)

type driverLogger struct {
	logger *log.Logger
}

// NewDriverLogger routes aws-sdk request logging into a driver logger
func NewDriverLogger(logger *log.Logger) aws.Logger {
	return &driverLogger{logger: logger}
}

func (l *driverLogger) Log(args ...interface{}) {
	l.logger.Println(fmt.Sprint(args...))
}

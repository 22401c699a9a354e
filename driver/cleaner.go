package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ec2uploadimg/collection"
	"ec2uploadimg/resources"
)

// Cleaner tears down everything a RunContext still records
type Cleaner struct {
	runCtx    *RunContext
	instances resources.InstanceDriver
	volumes   resources.VolumeDriver
	logger    *log.Logger
}

func NewCleaner(logDest io.Writer, runCtx *RunContext, instances resources.InstanceDriver, volumes resources.VolumeDriver) *Cleaner {
	return &Cleaner{
		runCtx:    runCtx,
		instances: instances,
		volumes:   volumes,
		logger:    log.New(logDest, "Cleaner ", log.LstdFlags),
	}
}

// Cleanup closes the remote channel when endConnection is set, terminates every tracked
// instance and then detaches and deletes every tracked volume. All failures are
// collected and returned together. The tracking lists are empty afterwards.
func (c *Cleaner) Cleanup(ctx context.Context, endConnection bool) error {
	cleanupStartTime := time.Now()
	defer func(startTime time.Time) {
		c.logger.Printf("completed Cleanup() in %f minutes\n", time.Since(startTime).Minutes())
	}(cleanupStartTime)

	errs := collection.Error{}

	if channel := c.runCtx.Channel(); endConnection && channel != nil {
		if err := channel.Close(); err != nil {
			errs.Add(fmt.Errorf("closing remote channel: %w", err))
		}
		c.runCtx.SetChannel(nil)
	}

	if instanceIDs := c.runCtx.InstanceIDs(); len(instanceIDs) > 0 {
		if err := c.instances.Terminate(ctx, instanceIDs); err != nil {
			errs.Add(err)
		}
		c.runCtx.ForgetInstances(instanceIDs)
	}

	for _, volume := range c.runCtx.Volumes() {
		if err := c.volumes.Detach(ctx, volume); err != nil {
			errs.Add(err)
		}
		if err := c.volumes.Delete(ctx, volume); err != nil {
			errs.Add(err)
			c.runCtx.ForgetVolume(volume.ID)
		}
	}

	err := errs.Error()
	if err != nil {
		c.logger.Printf("cleanup finished with errors: %s\n", err)
	}
	return err
}

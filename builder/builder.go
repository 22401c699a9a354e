package builder

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ec2uploadimg/config"
	"ec2uploadimg/driver"
	"ec2uploadimg/driverset"
	"ec2uploadimg/remote"
	"ec2uploadimg/resources"
)

// State is the phase an image build is in
type State string

const (
	IdleState               State = "idle"
	ProvisioningState       State = "provisioning"
	TransferringState       State = "transferring"
	FinalizingSnapshotState State = "finalizing-snapshot"
	FinalizingRootSwapState State = "finalizing-root-swap"
	SucceededState          State = "succeeded"
	FailedState             State = "failed"
)

// Strategies reported in a Result
const (
	SnapshotStrategy = "snapshot"
	RootSwapStrategy = "root-swap"
)

// Shell is the remote session the build runs its commands through
type Shell interface {
	Connect(ctx context.Context, resolve remote.AddressResolver, policy resources.WaitPolicy) error
	Run(ctx context.Context, command string) (string, error)
	Upload(ctx context.Context, localPath string, remotePath string) error
	Close() error
}

// Config is everything one image build needs to know besides the source file
type Config struct {
	Image         resources.ImageProperties
	LauncherImage string
	InstanceType  string
	KeyPairName   string
	Network       resources.NetworkOptions
	ResourceName  string
	Policy        resources.WaitPolicy
}

// NewConfig derives the build configuration from the upload options
func NewConfig(c config.UploadConfiguration, pollInterval time.Duration) Config {
	return Config{
		Image:         c.ImageProperties(),
		LauncherImage: c.LauncherImage,
		InstanceType:  c.InstanceType,
		KeyPairName:   c.SSHKeyPairName,
		Network:       c.NetworkOptions(),
		ResourceName:  c.ResourceName(),
		Policy:        c.WaitPolicy(pollInterval),
	}
}

// Result identifies what a build produced
type Result struct {
	ImageID    string
	SnapshotID string
	Name       string
	Strategy   string
}

// ImageBuilder assembles an image from a source disk image on a helper instance
type ImageBuilder struct {
	drivers driverset.DriverSet
	shell   Shell
	config  Config
	runCtx  *driver.RunContext
	logger  *log.Logger
	state   State
}

func NewImageBuilder(logDest io.Writer, drivers driverset.DriverSet, shell Shell, c Config) *ImageBuilder {
	return &ImageBuilder{
		drivers: drivers,
		shell:   shell,
		config:  c,
		runCtx:  drivers.RunContext(),
		logger:  log.New(logDest, "ImageBuilder ", log.LstdFlags),
		state:   IdleState,
	}
}

func (b *ImageBuilder) State() State {
	return b.state
}

func (b *ImageBuilder) setState(s State) {
	b.logger.Printf("%s -> %s\n", b.state, s)
	b.state = s
}

// CreateImage builds a root volume from source, snapshots it and registers an image
// booting from the snapshot. Everything provisioned is torn down afterwards.
func (b *ImageBuilder) CreateImage(ctx context.Context, source string) (Result, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		b.logger.Printf("completed CreateImage() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	if err := b.preflight(ctx); err != nil {
		return Result{}, b.abort(ctx, err)
	}

	result := Result{Name: b.config.Image.Name, Strategy: SnapshotStrategy}
	snapshot, err := b.snapshotFromSource(ctx, source)
	if err != nil {
		return result, b.abort(ctx, err)
	}
	result.SnapshotID = snapshot.ID

	image, err := b.drivers.ImageDriver().RegisterFromSnapshot(ctx, snapshot, b.config.Image)
	if err != nil {
		return result, b.abort(ctx, fmt.Errorf("registering image: %w", err))
	}
	result.ImageID = image.ID

	return result, b.finish(ctx)
}

// CreateSnapshot builds a root volume from source and snapshots it without registering an image
func (b *ImageBuilder) CreateSnapshot(ctx context.Context, source string) (Result, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		b.logger.Printf("completed CreateSnapshot() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	if err := b.preflight(ctx); err != nil {
		return Result{}, b.abort(ctx, err)
	}

	result := Result{Name: b.config.Image.Name, Strategy: SnapshotStrategy}
	snapshot, err := b.snapshotFromSource(ctx, source)
	if err != nil {
		return result, b.abort(ctx, err)
	}
	result.SnapshotID = snapshot.ID

	return result, b.finish(ctx)
}

// CreateImageUseRootSwap builds a root volume from source, swaps it in as the root of
// the stopped helper instance and images the instance. Once the image exists and
// does not become available nothing is cleaned up, so the helper and its volumes can be examined.
func (b *ImageBuilder) CreateImageUseRootSwap(ctx context.Context, source string) (Result, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		b.logger.Printf("completed CreateImageUseRootSwap() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	if err := b.preflight(ctx); err != nil {
		return Result{}, b.abort(ctx, err)
	}
	if err := b.checkSameVirtualization(ctx); err != nil {
		return Result{}, b.abort(ctx, err)
	}

	result := Result{Name: b.config.Image.Name, Strategy: RootSwapStrategy}
	built, err := b.buildRootVolume(ctx, source)
	if err != nil {
		return result, b.abort(ctx, err)
	}

	b.setState(FinalizingRootSwapState)
	instances := b.drivers.InstanceDriver()
	volumes := b.drivers.VolumeDriver()

	helper, err := instances.Stop(ctx, built.instance)
	if err != nil {
		return result, b.abort(ctx, err)
	}

	currentRoot, err := volumes.FindAttached(ctx, helper.ID)
	if err != nil {
		return result, b.abort(ctx, fmt.Errorf("finding root volume of helper instance: %w", err))
	}
	rootDevice := currentRoot.Attachment.Device
	b.runCtx.TrackVolume(currentRoot)

	if err = volumes.Detach(ctx, currentRoot); err != nil {
		return result, b.abort(ctx, err)
	}
	if _, err = volumes.Attach(ctx, helper, built.rootVolume, rootDevice); err != nil {
		return result, b.abort(ctx, err)
	}

	image, err := b.drivers.ImageDriver().CreateFromInstance(ctx, helper, b.config.Image)
	if err != nil {
		if image.ID != "" {
			b.logger.Printf("image %s did not become available, skipping clean up: %s\n", image.ID, err)
			b.setState(FailedState)
			result.ImageID = image.ID
			return result, err
		}
		return result, b.abort(ctx, fmt.Errorf("creating image from helper instance: %w", err))
	}
	result.ImageID = image.ID

	return result, b.finish(ctx)
}

func (b *ImageBuilder) snapshotFromSource(ctx context.Context, source string) (resources.Handle, error) {
	built, err := b.buildRootVolume(ctx, source)
	if err != nil {
		return resources.Handle{}, err
	}

	b.setState(FinalizingSnapshotState)
	snapshot, err := b.drivers.SnapshotDriver().Create(ctx, built.rootVolume, b.config.Image.Description)
	if err != nil {
		return resources.Handle{}, fmt.Errorf("creating snapshot: %w", err)
	}
	return snapshot, nil
}

// preflight fails before anything is provisioned
func (b *ImageBuilder) preflight(ctx context.Context) error {
	exists, err := b.drivers.ImageDriver().Exists(ctx, b.config.Image.Name)
	if err != nil {
		return err
	}
	if exists {
		return resources.PreflightError{Reason: fmt.Sprintf("image with name %q already exists", b.config.Image.Name)}
	}

	network := b.config.Network
	if network.SubnetID != "" || len(network.SecurityGroupIDs) > 0 {
		if err = b.drivers.NetworkDriver().Validate(ctx, network); err != nil {
			return err
		}
	}
	return nil
}

func (b *ImageBuilder) checkSameVirtualization(ctx context.Context) error {
	launcher, err := b.drivers.ImageDriver().Describe(ctx, b.config.LauncherImage)
	if err != nil {
		return fmt.Errorf("looking up launcher image: %w", err)
	}
	if launcher.VirtualizationType != b.config.Image.VirtualizationType {
		return resources.PreflightError{Reason: fmt.Sprintf(
			"launcher image %s uses %s virtualization but the image is %s, root swap is not possible",
			launcher.ID, launcher.VirtualizationType, b.config.Image.VirtualizationType)}
	}
	return nil
}

// finish runs the final cleanup of a successful build
func (b *ImageBuilder) finish(ctx context.Context) error {
	if err := b.drivers.Cleaner().Cleanup(ctx, true); err != nil {
		b.setState(FailedState)
		return fmt.Errorf("cleaning up after build: %w", err)
	}
	b.setState(SucceededState)
	return nil
}

// abort tears down the run and returns the error that caused it. Cleanup failures are
// logged and never replace the original error.
func (b *ImageBuilder) abort(ctx context.Context, cause error) error {
	b.setState(FailedState)
	b.logger.Printf("build failed: %s\n", cause)

	if err := b.drivers.Cleaner().Cleanup(context.WithoutCancel(ctx), true); err != nil {
		b.logger.Printf("cleaning up after failure: %s\n", err)
	}
	return cause
}

package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"ec2uploadimg/resources"
)

const mountPoint = "/mnt"

// assembly is what buildRootVolume leaves behind: the helper instance and the two
// volumes, both detached again
type assembly struct {
	instance      resources.Handle
	storageVolume resources.Handle
	rootVolume    resources.Handle
}

// buildRootVolume launches the helper instance, writes the source image onto a fresh
// root volume through a staging volume and returns with both volumes detached
func (b *ImageBuilder) buildRootVolume(ctx context.Context, source string) (assembly, error) {
	buildStartTime := time.Now()
	defer func(startTime time.Time) {
		b.logger.Printf("completed buildRootVolume() in %f minutes\n", time.Since(startTime).Minutes())
	}(buildStartTime)

	b.setState(ProvisioningState)
	b.runCtx.SourcePath = source
	built := assembly{}

	zone, err := b.drivers.NetworkDriver().SelectZone(ctx, b.config.Network)
	if err != nil {
		return built, err
	}

	built.instance, err = b.drivers.InstanceDriver().Launch(ctx, resources.InstanceConfig{
		ImageID:          b.config.LauncherImage,
		InstanceType:     b.config.InstanceType,
		AvailabilityZone: zone,
		KeyPairName:      b.config.KeyPairName,
		Name:             b.config.ResourceName,
		Network:          b.config.Network,
	})
	if err != nil {
		return built, err
	}
	if built.instance.AvailabilityZone != "" {
		zone = built.instance.AvailabilityZone
	}

	volumes := b.drivers.VolumeDriver()
	built.storageVolume, err = volumes.Create(ctx, resources.VolumeDriverConfig{
		SizeGB:           2 * b.config.Image.RootVolumeSizeGB,
		AvailabilityZone: zone,
		VolumeType:       resources.GeneralPurposeVolumeType,
		Name:             b.config.ResourceName,
	})
	if err != nil {
		return built, err
	}
	storageDevice, err := volumes.Attach(ctx, built.instance, built.storageVolume, "")
	if err != nil {
		return built, err
	}

	built.rootVolume, err = volumes.Create(ctx, resources.VolumeDriverConfig{
		SizeGB:           b.config.Image.RootVolumeSizeGB,
		AvailabilityZone: zone,
		VolumeType:       resources.GeneralPurposeVolumeType,
		Name:             b.config.ResourceName,
	})
	if err != nil {
		return built, err
	}
	rootDevice, err := volumes.Attach(ctx, built.instance, built.rootVolume, "")
	if err != nil {
		return built, err
	}

	b.setState(TransferringState)
	err = b.shell.Connect(ctx, func(ctx context.Context) (string, error) {
		return b.drivers.InstanceDriver().Address(ctx, built.instance, b.config.Network.UsePrivateIP)
	}, b.config.Policy)
	if err != nil {
		return built, fmt.Errorf("connecting to helper instance %s: %w", built.instance.ID, err)
	}
	b.runCtx.SetChannel(b.shell)

	storage, err := b.resolveDevice(ctx, built.storageVolume.ID, storageDevice)
	if err != nil {
		return built, err
	}
	root, err := b.resolveDevice(ctx, built.rootVolume.ID, rootDevice)
	if err != nil {
		return built, err
	}

	if err = b.partitionStorage(ctx, storage.GuestDevice); err != nil {
		return built, err
	}
	partition := storage.Partition(1)
	if err = b.createFilesystem(ctx, partition); err != nil {
		return built, err
	}
	if err = b.mount(ctx, partition, mountPoint); err != nil {
		return built, err
	}

	fileName := filepath.Base(source)
	if err = b.upload(ctx, source, mountPoint+"/"+fileName); err != nil {
		return built, err
	}
	rawImage, err := b.unpack(ctx, mountPoint, fileName)
	if err != nil {
		return built, err
	}
	if err = b.dumpRootFS(ctx, mountPoint+"/"+rawImage, root.GuestDevice); err != nil {
		return built, err
	}

	if _, err = b.shell.Run(ctx, "umount "+mountPoint); err != nil {
		return built, err
	}
	if err = b.shell.Close(); err != nil {
		return built, err
	}
	b.runCtx.SetChannel(nil)

	if err = volumes.Detach(ctx, built.rootVolume); err != nil {
		return built, err
	}
	if err = volumes.Detach(ctx, built.storageVolume); err != nil {
		return built, err
	}

	return built, nil
}

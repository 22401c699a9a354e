package builder

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	partitionStartSector = 2048
	partitionTailSectors = 100
	sfdiskLayoutFile     = "/tmp/partition.txt"
)

// partitionStorage puts a single partition on device with parted, or with sfdisk when
// the helper has no parted
func (b *ImageBuilder) partitionStorage(ctx context.Context, device string) error {
	parted, err := b.which(ctx, "parted")
	if err != nil {
		return err
	}
	if parted != "" {
		return b.partitionWithParted(ctx, parted, device)
	}

	sfdisk, err := b.which(ctx, "sfdisk")
	if err != nil {
		return err
	}
	if sfdisk == "" {
		return fmt.Errorf("neither parted nor sfdisk found on the helper instance, cannot partition %s", device)
	}

	b.logger.Printf("partitioning %s with %s\n", device, sfdisk)
	if _, err = b.shell.Run(ctx, fmt.Sprintf(`echo ",,L" > %s`, sfdiskLayoutFile)); err != nil {
		return err
	}
	_, err = b.shell.Run(ctx, fmt.Sprintf("%s %s < %s", sfdisk, device, sfdiskLayoutFile))
	return err
}

func (b *ImageBuilder) partitionWithParted(ctx context.Context, parted string, device string) error {
	b.logger.Printf("partitioning %s with %s\n", device, parted)
	if _, err := b.shell.Run(ctx, fmt.Sprintf("%s -s %s mklabel gpt", parted, device)); err != nil {
		return err
	}

	blockdev, err := b.which(ctx, "blockdev")
	if err != nil {
		return err
	}
	if blockdev == "" {
		blockdev = "blockdev"
	}
	output, err := b.shell.Run(ctx, fmt.Sprintf("%s --getsize %s", blockdev, device))
	if err != nil {
		return err
	}
	sectors, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return fmt.Errorf("reading size of %s from %q: %w", device, output, err)
	}
	if sectors-partitionTailSectors <= partitionStartSector {
		return fmt.Errorf("device %s with %d sectors is too small to partition", device, sectors)
	}

	_, err = b.shell.Run(ctx, fmt.Sprintf("%s -s %s unit s mkpart primary %d %d",
		parted, device, partitionStartSector, sectors-partitionTailSectors))
	return err
}

func (b *ImageBuilder) createFilesystem(ctx context.Context, partition string) error {
	b.logger.Printf("creating ext3 filesystem on %s\n", partition)
	_, err := b.shell.Run(ctx, "mkfs -t ext3 "+partition)
	return err
}

// mount mounts the partition and lets the login user write to it
func (b *ImageBuilder) mount(ctx context.Context, partition string, target string) error {
	if _, err := b.shell.Run(ctx, fmt.Sprintf("mount %s %s", partition, target)); err != nil {
		return err
	}
	_, err := b.shell.Run(ctx, "chmod 777 "+target)
	return err
}

// which returns the location of command on the helper, or "" when it is not installed
func (b *ImageBuilder) which(ctx context.Context, command string) (string, error) {
	output, err := b.shell.Run(ctx, fmt.Sprintf("which %s 2>/dev/null || true", command))
	if err != nil {
		return "", err
	}
	location := strings.TrimSpace(output)
	if location == "" || strings.Contains(location, "which: no") {
		return "", nil
	}
	return strings.Fields(location)[0], nil
}

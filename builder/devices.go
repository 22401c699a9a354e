package builder

import (
	"context"
	"path"
	"strings"

	"ec2uploadimg/resources"
)

const (
	devicesByID      = "/dev/disk/by-id"
	nvmeVolumePrefix = "nvme-Amazon_Elastic_Block_Store_"
)

// resolveDevice finds the device the guest exposes for a volume attached at requested.
// Xen guests rename sdX to xvdX, NVMe guests only expose the volume id under by-id.
func (b *ImageBuilder) resolveDevice(ctx context.Context, volumeID string, requested string) (resources.DeviceMapping, error) {
	mapping := resources.DeviceMapping{VolumeID: volumeID, RequestedDevice: requested}

	listing, err := b.shell.Run(ctx, "ls -1 /dev")
	if err != nil {
		return mapping, err
	}
	present := map[string]bool{}
	for _, name := range strings.Fields(listing) {
		present[name] = true
	}

	candidates := deviceCandidates(requested)
	for _, candidate := range candidates {
		if present[path.Base(candidate)] {
			mapping.GuestDevice = candidate
			b.logger.Printf("volume %s attached at %s is %s\n", volumeID, requested, candidate)
			return mapping, nil
		}
	}

	nvmeEntry := nvmeVolumePrefix + strings.ReplaceAll(volumeID, "-", "")
	candidates = append(candidates, devicesByID+"/"+nvmeEntry)

	byID, err := b.shell.Run(ctx, "ls -1 "+devicesByID+" 2>/dev/null || true")
	if err != nil {
		return mapping, err
	}
	for _, name := range strings.Fields(byID) {
		if name != nvmeEntry {
			continue
		}
		target, err := b.shell.Run(ctx, "readlink -f "+devicesByID+"/"+nvmeEntry)
		if err != nil {
			return mapping, err
		}
		if target = strings.TrimSpace(target); target != "" {
			mapping.GuestDevice = target
			b.logger.Printf("volume %s attached at %s is %s\n", volumeID, requested, target)
			return mapping, nil
		}
	}

	return mapping, resources.DeviceResolutionError{RequestedDevice: requested, Candidates: candidates}
}

// deviceCandidates lists the names the guest may use for the requested device
func deviceCandidates(requested string) []string {
	candidates := []string{requested}
	name := path.Base(requested)
	switch {
	case strings.HasPrefix(name, "sd"):
		candidates = append(candidates, "/dev/xvd"+strings.TrimPrefix(name, "sd"))
	case strings.HasPrefix(name, "xvd"):
		candidates = append(candidates, "/dev/sd"+strings.TrimPrefix(name, "xvd"))
	}
	return candidates
}

package resources

import (
	"strconv"
	"unicode"
)

// DeviceMapping pairs the device name requested from the cloud API with the device
// path the guest operating system actually exposes for the volume
type DeviceMapping struct {
	VolumeID        string
	RequestedDevice string
	GuestDevice     string
}

// Partition returns the path of the n-th partition on the guest device.
// NVMe style names (nvme1n1) separate the partition number with a "p".
func (m DeviceMapping) Partition(n int) string {
	device := m.GuestDevice
	if device == "" {
		device = m.RequestedDevice
	}
	if device == "" {
		return ""
	}
	if last := rune(device[len(device)-1]); unicode.IsDigit(last) {
		return device + "p" + strconv.Itoa(n)
	}
	return device + strconv.Itoa(n)
}

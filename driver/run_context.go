package driver

import (
	"fmt"
	"io"

	"ec2uploadimg/resources"
)

var deviceLetters = []string{"f", "g", "h", "i", "j"}

// RunContext records everything one image build provisions. The drivers add and
// remove entries, the Cleaner tears down whatever is left.
type RunContext struct {
	SourcePath string
	Image      resources.ImageProperties

	volumes     []resources.Handle
	instanceIDs []string
	nextDevice  int
	channel     io.Closer
}

func NewRunContext(sourcePath string, image resources.ImageProperties) *RunContext {
	return &RunContext{
		SourcePath: sourcePath,
		Image:      image,
	}
}

// NextDeviceName hands out /dev/sdf through /dev/sdj, each exactly once
func (r *RunContext) NextDeviceName() (string, error) {
	if r.nextDevice >= len(deviceLetters) {
		return "", fmt.Errorf("all %d attachment devices have been used", len(deviceLetters))
	}
	device := "/dev/sd" + deviceLetters[r.nextDevice]
	r.nextDevice++
	return device, nil
}

func (r *RunContext) TrackVolume(volume resources.Handle) {
	for i := range r.volumes {
		if r.volumes[i].ID == volume.ID {
			r.volumes[i] = volume
			return
		}
	}
	r.volumes = append(r.volumes, volume)
}

func (r *RunContext) ForgetVolume(volumeID string) {
	kept := r.volumes[:0]
	for _, v := range r.volumes {
		if v.ID != volumeID {
			kept = append(kept, v)
		}
	}
	r.volumes = kept
}

func (r *RunContext) TrackInstance(instanceID string) {
	for _, id := range r.instanceIDs {
		if id == instanceID {
			return
		}
	}
	r.instanceIDs = append(r.instanceIDs, instanceID)
}

func (r *RunContext) ForgetInstances(instanceIDs []string) {
	forget := map[string]bool{}
	for _, id := range instanceIDs {
		forget[id] = true
	}
	kept := r.instanceIDs[:0]
	for _, id := range r.instanceIDs {
		if !forget[id] {
			kept = append(kept, id)
		}
	}
	r.instanceIDs = kept
}

func (r *RunContext) Volumes() []resources.Handle {
	return append([]resources.Handle(nil), r.volumes...)
}

func (r *RunContext) InstanceIDs() []string {
	return append([]string(nil), r.instanceIDs...)
}

// SetChannel records the open remote channel, nil once it has been closed
func (r *RunContext) SetChannel(channel io.Closer) {
	r.channel = channel
}

func (r *RunContext) Channel() io.Closer {
	return r.channel
}

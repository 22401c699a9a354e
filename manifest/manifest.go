package manifest

import (
	"fmt"
	"io"

	"ec2uploadimg/builder"
	"ec2uploadimg/resources"

	yaml "gopkg.in/yaml.v2"
)

// Manifest describes the image a run produced
type Manifest struct {
	Name               string `yaml:"name"`
	Description        string `yaml:"description,omitempty"`
	Region             string `yaml:"region"`
	Strategy           string `yaml:"strategy"`
	ImageID            string `yaml:"image_id"`
	SnapshotID         string `yaml:"snapshot_id,omitempty"`
	VirtualizationType string `yaml:"virtualization_type"`
	Architecture       string `yaml:"architecture"`
	RootDeviceName     string `yaml:"root_device_name"`
	RunID              string `yaml:"run_id"`
}

func New(result builder.Result, props resources.ImageProperties, region string, runID string) *Manifest {
	return &Manifest{
		Name:               result.Name,
		Description:        props.Description,
		Region:             region,
		Strategy:           result.Strategy,
		ImageID:            result.ImageID,
		SnapshotID:         result.SnapshotID,
		VirtualizationType: props.VirtualizationType,
		Architecture:       props.Architecture,
		RootDeviceName:     props.RootDeviceName(),
		RunID:              runID,
	}
}

func NewFromReader(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := &Manifest{}
	if err = yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return m, nil
}

func (m *Manifest) Write(w io.Writer) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	_, err = w.Write(b)
	return err
}

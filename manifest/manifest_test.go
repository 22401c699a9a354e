package manifest_test

import (
	"bytes"
	"strings"

	"ec2uploadimg/builder"
	"ec2uploadimg/manifest"
	"ec2uploadimg/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Manifest", func() {
	props := resources.ImageProperties{
		Name:               "sles-15",
		Description:        "SLES 15",
		Architecture:       "x86_64",
		VirtualizationType: resources.HvmVirtualization,
	}

	Context("reading and writing the manifest", func() {
		It("writes the expected YAML document", func() {
			m := manifest.New(builder.Result{
				ImageID:    "ami-1234",
				SnapshotID: "snap-5678",
				Name:       "sles-15",
				Strategy:   builder.SnapshotStrategy,
			}, props, "eu-central-1", "run-id")

			writer := &bytes.Buffer{}
			err := m.Write(writer)
			Expect(err).ToNot(HaveOccurred())

			resultManifest := &manifest.Manifest{}
			err = yaml.Unmarshal(writer.Bytes(), resultManifest)
			Expect(err).ToNot(HaveOccurred())

			Expect(resultManifest.Name).To(Equal("sles-15"))
			Expect(resultManifest.Region).To(Equal("eu-central-1"))
			Expect(resultManifest.Strategy).To(Equal("snapshot"))
			Expect(resultManifest.ImageID).To(Equal("ami-1234"))
			Expect(resultManifest.SnapshotID).To(Equal("snap-5678"))
			Expect(resultManifest.RootDeviceName).To(Equal("/dev/sda1"))
			Expect(resultManifest.RunID).To(Equal("run-id"))
		})

		It("omits the snapshot of a root swapped image", func() {
			m := manifest.New(builder.Result{
				ImageID:  "ami-1234",
				Name:     "sles-15",
				Strategy: builder.RootSwapStrategy,
			}, props, "eu-central-1", "run-id")

			writer := &bytes.Buffer{}
			Expect(m.Write(writer)).To(Succeed())
			Expect(writer.String()).ToNot(ContainSubstring("snapshot_id"))
			Expect(writer.String()).To(ContainSubstring("strategy: root-swap"))
		})

		It("reads a written manifest back", func() {
			m, err := manifest.NewFromReader(strings.NewReader("name: sles-15\nimage_id: ami-1234\nregion: us-east-1\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(m.ImageID).To(Equal("ami-1234"))
			Expect(m.Region).To(Equal("us-east-1"))
		})

		It("returns an error for malformed YAML", func() {
			_, err := manifest.NewFromReader(strings.NewReader("name: [unterminated"))
			Expect(err).To(MatchError(ContainSubstring("parsing manifest")))
		})
	})
})

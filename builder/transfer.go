package builder

import (
	"context"
	"fmt"
	"strings"

	"ec2uploadimg/resources"
)

var archiveMarkers = []string{".tar", ".tbz", ".tgz"}

func (b *ImageBuilder) upload(ctx context.Context, source string, target string) error {
	return b.shell.Upload(ctx, source, target)
}

// unpack extracts or inflates the uploaded file in dir and returns the name of the raw
// disk image inside dir
func (b *ImageBuilder) unpack(ctx context.Context, dir string, fileName string) (string, error) {
	entries := []string{fileName}
	if isArchive(fileName) {
		b.logger.Printf("extracting %s\n", fileName)
		output, err := b.shell.Run(ctx, fmt.Sprintf("tar -C %s -xvf %s/%s", dir, dir, fileName))
		if err != nil {
			return "", err
		}
		entries = strings.Fields(output)
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry, ".xz") {
			b.logger.Printf("inflating %s\n", entry)
			if _, err := b.shell.Run(ctx, fmt.Sprintf("xz -d %s/%s", dir, entry)); err != nil {
				return "", err
			}
			return strings.TrimSuffix(entry, ".xz"), nil
		}
		if strings.HasSuffix(entry, ".raw") {
			return entry, nil
		}
	}

	return "", resources.UnpackError{FileName: fileName, Entries: entries}
}

// dumpRootFS writes the raw image onto the target device
func (b *ImageBuilder) dumpRootFS(ctx context.Context, rawImage string, device string) error {
	b.logger.Printf("writing %s to %s\n", rawImage, device)
	_, err := b.shell.Run(ctx, fmt.Sprintf("dd if=%s of=%s bs=32k", rawImage, device))
	return err
}

func isArchive(fileName string) bool {
	for _, marker := range archiveMarkers {
		if strings.Contains(fileName, marker) {
			return true
		}
	}
	return false
}

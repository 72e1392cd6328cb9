package questiongen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the largest image LoadImage accepts.
var MaxImageBytes int64 = 20 << 20

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/heic",
	"image/heif",
}

// Image is a still image of course material.
type Image struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Ext returns the canonical file extension for the image type, e.g. ".png".
func (img Image) Ext() string {
	if m := mimetype.Lookup(img.MIMEType); m != nil {
		return m.Extension()
	}
	return ""
}

// LoadImage reads the file at path and detects its type from content.
func LoadImage(path string) (Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Image{}, ErrNoImage
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("open image: %w", err)
	}
	if info.IsDir() {
		return Image{}, ErrNoImage
	}
	if info.Size() > MaxImageBytes {
		return Image{}, fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}

	mt := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if mt.Is(allowed) {
			return Image{
				Name:     filepath.Base(path),
				MIMEType: allowed,
				Data:     data,
			}, nil
		}
	}
	return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
}

package questiongen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadImage_DetectsType(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"png", "sheet.png", pngHeader, "image/png"},
		{"jpeg with wrong extension", "photo.txt", jpegHeader, "image/jpeg"},
		{"gif", "anim.gif", gifHeader, "image/gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadImage(writeFile(t, tt.file, tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.MIMEType != tt.want {
				t.Errorf("MIMEType = %q, want %q", img.MIMEType, tt.want)
			}
			if img.Name != tt.file {
				t.Errorf("Name = %q, want %q", img.Name, tt.file)
			}
			if len(img.Data) != len(tt.data) {
				t.Errorf("expected %d bytes, got %d", len(tt.data), len(img.Data))
			}
		})
	}
}

func TestLoadImage_Rejects(t *testing.T) {
	if _, err := LoadImage("  "); !errors.Is(err, ErrNoImage) {
		t.Errorf("blank path: got %v, want ErrNoImage", err)
	}
	if _, err := LoadImage(t.TempDir()); !errors.Is(err, ErrNoImage) {
		t.Errorf("directory: got %v, want ErrNoImage", err)
	}
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want not-exist", err)
	}
	pdf := writeFile(t, "notes.pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))
	if _, err := LoadImage(pdf); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("pdf: got %v, want ErrUnsupportedImage", err)
	}
}

func TestLoadImage_TooLarge(t *testing.T) {
	old := MaxImageBytes
	MaxImageBytes = 8
	t.Cleanup(func() { MaxImageBytes = old })

	_, err := LoadImage(writeFile(t, "big.png", pngHeader))
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestImageExt(t *testing.T) {
	if ext := (Image{MIMEType: "image/png"}).Ext(); ext != ".png" {
		t.Errorf("png ext = %q", ext)
	}
	if ext := (Image{MIMEType: "application/x-unknown"}).Ext(); ext != "" {
		t.Errorf("unknown ext = %q", ext)
	}
}

// Package uploads archives the images fed into image mode.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Backends.
const (
	BackendNone  = "none"
	BackendLocal = "local"
	BackendMinio = "minio"
)

// Config selects and configures the archive backend.
type Config struct {
	Backend string
	Dir     string
	Minio   MinioConfig
}

// MinioConfig holds the connection settings for an S3-compatible bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// DefaultConfig disables archiving and points the local backend at the
// application data directory.
func DefaultConfig() Config {
	return Config{
		Backend: BackendNone,
		Dir:     defaultDir(),
		Minio:   MinioConfig{Bucket: "mathquiz"},
	}
}

func defaultDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mathquiz")
}

// Archive stores an uploaded file under key and returns its location.
type Archive interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Key builds an object key of the form uploads/<yyyy-mm-dd>/<uuid><ext>.
func Key(now time.Time, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("uploads/%s/%s%s", now.Format("2006-01-02"), uuid.New().String(), ext)
}

// New returns the archive for cfg.Backend. An empty backend means none.
func New(ctx context.Context, cfg Config) (Archive, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendNone:
		return Nop{}, nil
	case BackendLocal:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("uploads: local backend requires a directory")
		}
		return NewLocal(cfg.Dir), nil
	case BackendMinio:
		return NewMinio(ctx, cfg.Minio)
	default:
		return nil, fmt.Errorf("uploads: unknown backend %q (supported: none, local, minio)", cfg.Backend)
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) Put(context.Context, string, []byte, string) (string, error) { return "", nil }

// Local writes files below a root directory.
type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	dst := filepath.Join(l.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.root, dst)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("uploads: key %q escapes archive root", key)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return dst, nil
}

func newReader(data []byte) *bytes.Reader { return bytes.NewReader(data) }

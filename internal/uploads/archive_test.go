package uploads

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	now := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^uploads/2025-03-09/[0-9a-f-]{36}\.png$`)

	assert.Regexp(t, re, Key(now, ".png"))
	assert.Regexp(t, re, Key(now, "png"))
	assert.NotEqual(t, Key(now, ".png"), Key(now, ".png"))
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		cfg     Config
		want    any
		wantErr bool
	}{
		{"empty backend", Config{}, Nop{}, false},
		{"none", Config{Backend: "none"}, Nop{}, false},
		{"local", Config{Backend: "LOCAL", Dir: t.TempDir()}, &Local{}, false},
		{"local without dir", Config{Backend: "local"}, nil, true},
		{"minio without endpoint", Config{Backend: "minio"}, nil, true},
		{"unknown", Config{Backend: "ftp"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(ctx, tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, a)
		})
	}
}

func TestLocalPut(t *testing.T) {
	root := t.TempDir()
	l := NewLocal(root)

	key := Key(time.Now(), ".jpg")
	loc, err := l.Put(context.Background(), key, []byte("image"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, filepath.FromSlash(key)), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))
}

func TestLocalPut_RejectsEscapingKey(t *testing.T) {
	l := NewLocal(t.TempDir())
	_, err := l.Put(context.Background(), "../outside.png", []byte("x"), "image/png")
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	cfg := DefaultConfig()
	assert.Equal(t, BackendNone, cfg.Backend)
	assert.Equal(t, filepath.Join("/tmp/xdg", "mathquiz"), cfg.Dir)
}

func TestNopPut(t *testing.T) {
	loc, err := Nop{}.Put(context.Background(), "k", []byte("x"), "")
	require.NoError(t, err)
	assert.Empty(t, loc)
}

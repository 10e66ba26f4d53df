package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/ssxview/ssx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	dir := t.TempDir()

	linear := make([]byte, ssx.Linear2bpp.Size())
	copy(linear[len(linear)-4:], []byte{0x00, 0x22, 0xc4, 0x7f})

	tests := []struct {
		name string
		b    []byte
		want string
	}{
		{"raw.ssx", make([]byte, ssx.RawIndexed.Size()), "raw indexed, 512x192, CLUT none\n"},
		{"linear.ssx", linear, "mode 3, 512x192, CLUT 0 34 68 127\n"},
		{"mode1.ssx", make([]byte, ssx.Mode1.Size()), "mode 1, 256x192, CLUT 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, tt.b, 0644))

			b := new(bytes.Buffer)
			require.NoError(t, info(b, path))
			assert.Equal(t, path+": "+tt.want, b.String())
		})
	}
}

func TestInfoErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.ssx")
	require.NoError(t, os.WriteFile(path, make([]byte, 12303), 0644))

	err := info(new(bytes.Buffer), path)
	assert.True(t, errors.Is(err, ssx.ErrUnsupportedFormat))
	assert.EqualError(t, err, path+": ssx: invalid file size (12303 bytes)")

	assert.Error(t, info(new(bytes.Buffer), filepath.Join(dir, "missing.ssx")))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

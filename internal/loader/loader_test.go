package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load rom file", func(t *testing.T) {
		data := make([]byte, 2*0x4000)
		data[0x0100] = 0x00
		data[0x0101] = 0xC3
		tmpFile := createTempFile(t, data)

		img, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, len(data), img.Len())
		assert.Equal(t, 2, img.Banks())
	})

	t.Run("file too small", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x01, 0x02})

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrTooSmall))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.gb"))
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("load from reader", func(t *testing.T) {
		img, err := New().LoadReader(bytes.NewReader(make([]byte, HeaderEnd)))
		assert.NoError(t, err)
		assert.Equal(t, HeaderEnd, img.Len())
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

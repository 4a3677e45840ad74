// api/storage/disk_test.go
package storage_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	logger "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/logging"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/storage"
)

func TestMain(m *testing.M) {
	logger.InitLogger(os.TempDir())
	defer logger.Sync()
	m.Run()
}

func TestDiskStore_RoundTrip(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	path, size, err := store.Save("notes.pdf", strings.NewReader("payload"))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), size)
	assert.Contains(t, path, ".pdf")

	r, err := store.Open(path)
	assert.NoError(t, err)
	data, _ := io.ReadAll(r)
	r.Close()
	assert.Equal(t, "payload", string(data))

	assert.NoError(t, store.Remove(path))
	_, err = store.Open(path)
	assert.ErrorIs(t, err, echo_errors.ErrFileNotFound)
}

// Two uploads with the same client file name must not collide.
func TestDiskStore_SameNameNoCollision(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	first, _, err := store.Save("notes.pdf", strings.NewReader("one"))
	assert.NoError(t, err)
	second, _, err := store.Save("notes.pdf", strings.NewReader("two"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	r, err := store.Open(first)
	assert.NoError(t, err)
	data, _ := io.ReadAll(r)
	r.Close()
	assert.Equal(t, "one", string(data))
}

package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	data, source, err := Read("Zm9v", "", strings.NewReader("ignored"))

	require.NoError(t, err)
	assert.Equal(t, "input", source)
	assert.Equal(t, "Zm9v", string(data))
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.b64")
	require.NoError(t, os.WriteFile(name, []byte("Zm9v\r\nYmFy"), 0o600))

	data, source, err := Read("", name, nil)

	require.NoError(t, err)
	assert.Equal(t, name, source)
	assert.Equal(t, "Zm9v\r\nYmFy", string(data))
}

func TestReadEmptyFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(name, nil, 0o600))

	data, _, err := Read("", name, nil)

	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := Read("", filepath.Join(t.TempDir(), "missing"), nil)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadStdin(t *testing.T) {
	data, source, err := Read("", "", strings.NewReader("foo\nbar\n"))

	require.NoError(t, err)
	assert.Equal(t, Stdin, source)
	assert.Equal(t, "foo\nbar\n", string(data))
}

func TestReadEmptyStdin(t *testing.T) {
	data, _, err := Read("", "", strings.NewReader(""))

	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestReadStdinError(t *testing.T) {
	_, _, err := Read("", "", iotest.ErrReader(assert.AnError))

	assert.ErrorIs(t, err, assert.AnError)
}

func TestReadConflict(t *testing.T) {
	_, _, err := Read("Zm9v", "file", nil)

	assert.EqualError(t, err, "only one of --input and --file can be given")
}

func TestReadNothing(t *testing.T) {
	_, _, err := Read("", "", nil)

	assert.Error(t, err)
}

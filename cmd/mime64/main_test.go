package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/mime64/base64"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"mime64"}, args...))
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "", "encode", "--input", "foobar")

	require.NoError(t, err)
	assert.Equal(t, "Zm9vYmFy\n", out)
}

func TestEncodeStdin(t *testing.T) {
	out, err := run(t, "fo", "encode")

	require.NoError(t, err)
	assert.Equal(t, "Zm8=\n", out)
}

func TestEncodeEmptyStdin(t *testing.T) {
	out, err := run(t, "", "encode")

	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestEncodeWrap(t *testing.T) {
	input := strings.Repeat("a", 60)

	out, err := run(t, "", "encode", "--wrap", "--input", input)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], base64.LineLength)
	assert.Equal(t, "YWFh", lines[1])
}

func TestEncodeWrapEnv(t *testing.T) {
	t.Setenv("MIME64_WRAP", "true")

	out, err := run(t, "", "encode", "--input", strings.Repeat("a", 60))

	require.NoError(t, err)
	assert.Contains(t, out, "\r\n")
}

func TestEncodeFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(name, []byte("foo"), 0o600))

	out, err := run(t, "", "encode", "--file", name)

	require.NoError(t, err)
	assert.Equal(t, "Zm9v\n", out)
}

func TestDecode(t *testing.T) {
	out, err := run(t, "", "decode", "--input", "Zm9v\r\nYmFy")

	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestDecodeStdin(t *testing.T) {
	out, err := run(t, "Zm9vYmFy\n", "decode")

	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestDecodeFast(t *testing.T) {
	out, err := run(t, "Zm9vYmFy\n", "decode", "--fast")

	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestDecodeCorrupt(t *testing.T) {
	out, err := run(t, "", "decode", "--input", "Zg=")

	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, base64.ErrCorrupt))
	assert.Equal(t, "decode failed (IncorrectEncoding): base64: input is corrupt", err.Error())

	var ec cli.ExitCoder
	require.True(t, errors.As(err, &ec))
	assert.Equal(t, exitCode(base64.KindBase64EncodingInvalid), ec.ExitCode())
}

func TestDecodeFastUnknown(t *testing.T) {
	_, err := run(t, "", "decode", "--fast", "--input", "==")

	require.Error(t, err)
	assert.Equal(t, base64.KindUnknownError, base64.KindOf(err))
}

func TestConflictingSources(t *testing.T) {
	_, err := run(t, "", "encode", "--input", "a", "--file", "b")

	assert.EqualError(t, err, "only one of --input and --file can be given")
}

func TestExitCodes(t *testing.T) {
	seen := make(map[int]base64.Kind)
	for _, k := range []base64.Kind{
		base64.KindInputDataEmpty,
		base64.KindNoMemory,
		base64.KindBase64StringEmpty,
		base64.KindBase64EncodingInvalid,
		base64.KindUnknownError,
	} {
		code := exitCode(k)
		assert.NotZero(t, code)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate exit code %d", code)
		seen[code] = k
	}
}

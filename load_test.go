package filesizehist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/vearutop/filesizehist"
)

const listing = "4096 ./dir\n\n12 ./dir/file name with spaces.txt\n0 ./dir/.keep\n  7\t./tabbed\n"

func TestRead(t *testing.T) {
	sizes, err := filesizehist.Read(strings.NewReader(listing))
	require.NoError(t, err)
	assert.Equal(t, []int64{4096, 12, 0, 7}, sizes)
}

func TestRead_errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{name: "empty", input: "", err: filesizehist.ErrEmptyInput},
		{name: "blank lines", input: "\n \n\t\n", err: filesizehist.ErrEmptyInput},
		{name: "not a number", input: "12 a\nabc b\n", err: filesizehist.ErrParse, msg: `line 2: invalid size "abc"`},
		{name: "negative", input: "-5 a\n", err: filesizehist.ErrParse, msg: `line 1: invalid size "-5"`},
		{name: "float", input: "1.5 a\n", err: filesizehist.ErrParse},
		{name: "overflow", input: "99999999999999999999 a\n", err: filesizehist.ErrParse},
		{name: "long line", input: "1 " + strings.Repeat("x", 2<<20) + "\n", err: filesizehist.ErrInput},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sizes, err := filesizehist.Read(strings.NewReader(tc.input))
			assert.Nil(t, sizes)
			require.ErrorIs(t, err, tc.err)

			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestRead_compressed(t *testing.T) {
	var gz bytes.Buffer

	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(listing))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zs bytes.Buffer

	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write([]byte(listing))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var x bytes.Buffer

	xw, err := xz.NewWriter(&x)
	require.NoError(t, err)
	_, err = xw.Write([]byte(listing))
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	for name, data := range map[string][]byte{"gzip": gz.Bytes(), "zstd": zs.Bytes(), "xz": x.Bytes()} {
		t.Run(name, func(t *testing.T) {
			sizes, err := filesizehist.Read(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, []int64{4096, 12, 0, 7}, sizes)
		})
	}
}

func TestRead_corruptedGzip(t *testing.T) {
	_, err := filesizehist.Read(bytes.NewReader([]byte{0x1f, 0x8b, 0x00, 0x01, 0x02}))
	assert.ErrorIs(t, err, filesizehist.ErrInput)
}

func TestRead_shortInput(t *testing.T) {
	sizes, err := filesizehist.Read(strings.NewReader("1"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, sizes)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sizes.txt")
	require.NoError(t, os.WriteFile(fn, []byte(listing), 0o600))

	sizes, err := filesizehist.Load(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{4096, 12, 0, 7}, sizes)
}

func TestLoad_stdin(t *testing.T) {
	sizes, err := filesizehist.Load(filesizehist.Stdin, strings.NewReader("10 a\n20 b\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, sizes)
}

func TestLoad_missing(t *testing.T) {
	_, err := filesizehist.Load(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, filesizehist.ErrInput)
}

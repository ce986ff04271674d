package filesizehist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Stdin is an input name that selects standard input.
const Stdin = "-"

// maxLineSize limits a single listing line, paths can be long.
const maxLineSize = 1 << 20

// Input errors.
var (
	ErrInput      = errors.New("input error")
	ErrParse      = errors.New("parse error")
	ErrEmptyInput = errors.New("empty input")
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// Load reads sizes from a named file, or from stdin if name is Stdin.
func Load(name string, stdin io.Reader) ([]int64, error) {
	if name == Stdin {
		return Read(stdin)
	}

	f, err := os.Open(name) //nolint:gosec // User-supplied listing path.
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}

// Read parses a listing where each line starts with a decimal size in bytes.
//
// Text after the first whitespace-separated token is ignored, blank lines are skipped.
// Gzip, zstd and xz streams are decompressed transparently.
func Read(r io.Reader) ([]int64, error) {
	src, closer, err := decompress(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	if closer != nil {
		defer closer()
	}

	var (
		sizes []int64
		line  int
	)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		size, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid size %q", ErrParse, line, fields[0])
		}

		sizes = append(sizes, size)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	if len(sizes) == 0 {
		return nil, ErrEmptyInput
	}

	return sizes, nil
}

func decompress(br *bufio.Reader) (io.Reader, func(), error) {
	// Peek error means a short stream, it is not compressed then.
	header, _ := br.Peek(len(xzMagic))

	switch {
	case bytes.HasPrefix(header, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: gzip: %v", ErrInput, err)
		}

		return gr, func() { _ = gr.Close() }, nil
	case bytes.HasPrefix(header, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: zstd: %v", ErrInput, err)
		}

		return zr, zr.Close, nil
	case bytes.HasPrefix(header, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: xz: %v", ErrInput, err)
		}

		return xr, nil, nil
	default:
		return br, nil, nil
	}
}

package treecodec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Magic is the little-endian LZ4 frame magic number 0x184D2204.
//
//nolint:gochecknoglobals // Constant byte pattern.
var lz4Magic = []byte{0x04, 0x22, 0x4D, 0x18}

// IsCompressed reports whether data starts with an LZ4 frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, lz4Magic)
}

// Compress wraps data in an LZ4 frame.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := lz4.NewWriter(&buf)

	_, err := zw.Write(data)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	err = zw.Close()
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress unwraps an LZ4 frame. Data without a frame header is returned
// unchanged. Only one level of framing is accepted.
func Decompress(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return data, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", ErrInvalidDocument, err)
	}

	return out, checkSingleFrame(out)
}

func checkSingleFrame(payload []byte) error {
	if IsCompressed(payload) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNestedFrame)
	}

	return nil
}

// ReadDocument reads a whole document from r, refusing inputs larger than
// limit bytes after decompression. A limit of zero or less disables the
// check.
func ReadDocument(r io.Reader, limit int64) ([]byte, error) {
	raw, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}

	if !IsCompressed(raw) {
		return raw, nil
	}

	data, err := readLimited(lz4.NewReader(bytes.NewReader(raw)), limit)
	if err != nil {
		return nil, err
	}

	err = checkSingleFrame(data)
	if err != nil {
		return nil, err
	}

	return data, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}

		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	return data, nil
}

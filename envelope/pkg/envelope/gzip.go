package envelope

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether raw starts with the gzip magic bytes.
func IsGzip(raw []byte) bool {
	return bytes.HasPrefix(raw, gzipMagic)
}

// decompress reads every gzip member in raw. Zero bytes between or after
// members are padding and skipped; any other trailing data is an error.
func decompress(raw []byte) ([]byte, error) {
	r := bytes.NewReader(raw)
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var plain bytes.Buffer
	for {
		zr.Multistream(false)
		if _, err := io.Copy(&plain, zr); err != nil {
			return nil, err
		}
		skipZeros(r)
		if r.Len() == 0 {
			return plain.Bytes(), nil
		}
		if err := zr.Reset(r); err != nil {
			return nil, fmt.Errorf("data after gzip member: %w", err)
		}
	}
}

func skipZeros(r *bytes.Reader) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b != 0 {
			_ = r.UnreadByte()
			return
		}
	}
}

// Compress gzips an envelope the way SDKs do before sending it.
func Compress(plain []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(plain); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

package envelope

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

type walkState int

const (
	expectHeader walkState = iota
	expectPayload
)

// Decode reconstructs the text form of a raw envelope.
//
// Gzip framed payloads are decompressed first; a payload that claims gzip but
// is corrupt yields an error wrapping ErrDecompression. Any other input,
// including empty or entirely binary input, decodes successfully. Segments
// that are not valid UTF-8 are replaced by placeholders and reported in
// Decoded.Warnings (headers) or counted in Decoded.BinaryPayloads (payloads).
//
// Decode does no I/O and is safe to call concurrently.
func Decode(raw []byte) (*Decoded, error) {
	d := &Decoded{RawSize: len(raw)}

	body := raw
	if IsGzip(raw) {
		plain, err := decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		body = plain
		d.Compressed = true
	}
	d.Size = len(body)

	segments := bytes.Split(body, []byte{'\n'})

	if utf8.Valid(segments[0]) {
		d.add(FragmentHeader, string(segments[0]), len(segments[0]))
	} else {
		d.warn(0, "envelope header could not be decoded as UTF-8")
		d.add(FragmentInvalidHeader, HeaderPlaceholder, len(segments[0]))
	}

	state := expectHeader
	for i := 1; i < len(segments); i++ {
		seg := segments[i]

		switch state {
		case expectHeader:
			if isBlank(seg) {
				continue
			}
			d.Items++
			if !utf8.Valid(seg) {
				// The payload that belongs to this header is not consumed:
				// the next segment is read as a header again.
				d.warn(i, "item header at position %d could not be decoded as UTF-8", i)
				d.add(FragmentInvalidItemHeader, ItemHeaderPlaceholder, len(seg))
				continue
			}
			d.add(FragmentItemHeader, string(seg), len(seg))
			state = expectPayload

		case expectPayload:
			if utf8.Valid(seg) {
				d.add(FragmentPayload, string(seg), len(seg))
			} else {
				d.BinaryPayloads++
				d.add(FragmentBinary, BinaryPlaceholder(len(seg)), len(seg))
			}
			state = expectHeader
		}
	}

	// A trailing item header without payload is kept as is.
	return d, nil
}

// isBlank reports whether seg is empty or only ASCII whitespace.
func isBlank(seg []byte) bool {
	for _, c := range seg {
		switch c {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}

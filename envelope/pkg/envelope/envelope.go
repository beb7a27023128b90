// Package envelope turns raw telemetry envelopes into a text form that can be
// stored and read by a human.
//
// An envelope is a newline separated stream: one header line followed by item
// header / payload pairs. Payloads may be arbitrary binary data (attachments),
// so they are replaced by a small JSON placeholder when they are not UTF-8.
package envelope

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDecompression is returned by Decode when the payload starts with the gzip
// magic bytes but cannot be decompressed. It is the only failure Decode reports.
var ErrDecompression = errors.New("envelope: gzip decompression failed")

const (
	// HeaderPlaceholder replaces an envelope header that is not valid UTF-8.
	HeaderPlaceholder = `{"error": "Could not decode header"}`

	// ItemHeaderPlaceholder replaces an item header that is not valid UTF-8.
	ItemHeaderPlaceholder = `{"error": "Could not decode item header"}`
)

// BinaryPlaceholder returns the fragment written in place of a binary payload
// of size bytes.
func BinaryPlaceholder(size int) string {
	return fmt.Sprintf(`{"binary_data": true, "size": %d}`, size)
}

// FragmentKind identifies what a fragment of the decoded text stands for.
type FragmentKind int

const (
	FragmentHeader FragmentKind = iota
	FragmentInvalidHeader
	FragmentItemHeader
	FragmentInvalidItemHeader
	FragmentPayload
	FragmentBinary
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentHeader:
		return "header"
	case FragmentInvalidHeader:
		return "invalid_header"
	case FragmentItemHeader:
		return "item_header"
	case FragmentInvalidItemHeader:
		return "invalid_item_header"
	case FragmentPayload:
		return "payload"
	case FragmentBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Fragment is one line of the decoded representation.
type Fragment struct {
	Kind FragmentKind
	// Text is the decoded segment or its placeholder.
	Text string
	// Size is the byte length of the original segment.
	Size int
}

// Warning records a segment that had to be replaced by a placeholder.
type Warning struct {
	// Segment is the index of the offending segment in the newline split.
	Segment int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("segment %d: %s", w.Segment, w.Message)
}

// Decoded is the result of decoding one raw payload.
type Decoded struct {
	Fragments []Fragment
	Warnings  []Warning

	// Compressed is true when the raw payload was gzip framed.
	Compressed bool
	// Items counts item headers, including ones that could not be decoded.
	Items          int
	BinaryPayloads int

	// RawSize is the length of the payload as received, Size after decompression.
	RawSize int
	Size    int
}

// Text joins all fragments with newlines. This is the text that gets stored.
func (d *Decoded) Text() string {
	if d == nil || len(d.Fragments) == 0 {
		return ""
	}

	n := len(d.Fragments) - 1
	for _, f := range d.Fragments {
		n += len(f.Text)
	}

	var b strings.Builder
	b.Grow(n)
	for i, f := range d.Fragments {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Text)
	}
	return b.String()
}

func (d *Decoded) add(kind FragmentKind, text string, size int) {
	d.Fragments = append(d.Fragments, Fragment{Kind: kind, Text: text, Size: size})
}

func (d *Decoded) warn(segment int, format string, args ...any) {
	d.Warnings = append(d.Warnings, Warning{Segment: segment, Message: fmt.Sprintf(format, args...)})
}

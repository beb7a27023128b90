// Package inspect summarizes a decoded envelope.
package inspect

import (
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
)

type Summary struct {
	Compressed     bool     `json:"compressed" yaml:"compressed"`
	RawSize        int      `json:"raw_size" yaml:"raw_size"`
	Size           int      `json:"size" yaml:"size"`
	EventID        string   `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Items          []Item   `json:"items" yaml:"items"`
	BinaryPayloads int      `json:"binary_payloads" yaml:"binary_payloads"`
	Warnings       []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type Item struct {
	Type string `json:"type" yaml:"type"`
	// Binary is set when the payload was replaced by a placeholder.
	Binary bool `json:"binary" yaml:"binary"`
	// Size of the original payload in bytes; -1 when the item has none.
	Size int `json:"size" yaml:"size"`
}

// Summarize walks the fragments of d. Item types come from the "type" field
// of each item header.
func Summarize(d *envelope.Decoded) Summary {
	s := Summary{
		Compressed:     d.Compressed,
		RawSize:        d.RawSize,
		Size:           d.Size,
		Items:          []Item{},
		BinaryPayloads: d.BinaryPayloads,
	}

	for _, f := range d.Fragments {
		switch f.Kind {
		case envelope.FragmentHeader:
			if h, err := envelope.ParseHeader(f.Text); err == nil {
				if id, ok := h["event_id"].(string); ok {
					s.EventID = id
				}
			}
		case envelope.FragmentItemHeader, envelope.FragmentInvalidItemHeader:
			s.Items = append(s.Items, Item{Type: envelope.ItemType(f.Text), Size: -1})
		case envelope.FragmentPayload, envelope.FragmentBinary:
			if len(s.Items) == 0 {
				continue
			}
			last := &s.Items[len(s.Items)-1]
			last.Size = f.Size
			last.Binary = f.Kind == envelope.FragmentBinary
		}
	}

	for _, w := range d.Warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s
}

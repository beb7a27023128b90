// Package generate builds sample envelopes for manual testing of the mock
// servers.
package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
)

type Options struct {
	// Items is the number of event/session items.
	Items int
	// AttachmentSize adds a binary attachment of that many bytes when > 0.
	AttachmentSize int
	Gzip           bool
	// Seed makes the output reproducible; 0 picks a random seed.
	Seed int64
}

type Result struct {
	Raw     []byte
	EventID string
	// Items counts every item including the attachment.
	Items int
}

type Generator struct {
	faker *gofakeit.Faker
}

func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate writes one envelope per call.
func (g *Generator) Generate(opts Options) (*Result, error) {
	if opts.Items < 0 {
		return nil, fmt.Errorf("items must not be negative")
	}
	if opts.AttachmentSize < 0 {
		return nil, fmt.Errorf("attachment size must not be negative")
	}

	f := g.faker
	eventID := strings.ReplaceAll(f.UUID(), "-", "")

	var buf bytes.Buffer
	if err := writeLine(&buf, map[string]interface{}{
		"event_id": eventID,
		"sent_at":  time.Now().UTC().Format(time.RFC3339),
		"sdk": map[string]string{
			"name":    "sentry.dotnet.unity",
			"version": f.AppVersion(),
		},
	}); err != nil {
		return nil, err
	}

	res := &Result{EventID: eventID}
	for i := 0; i < opts.Items; i++ {
		itemType := f.RandomString([]string{"event", "session", "transaction"})
		payload, err := json.Marshal(g.payload(itemType))
		if err != nil {
			return nil, err
		}
		if err := writeLine(&buf, map[string]interface{}{"type": itemType, "length": len(payload)}); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		buf.Write(payload)
		res.Items++
	}

	if opts.AttachmentSize > 0 {
		if err := writeLine(&buf, map[string]interface{}{
			"type":         "attachment",
			"length":       opts.AttachmentSize,
			"filename":     f.Word() + ".png",
			"content_type": "image/png",
		}); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		buf.Write(g.binary(opts.AttachmentSize))
		res.Items++
	}

	res.Raw = buf.Bytes()
	if opts.Gzip {
		compressed, err := envelope.Compress(res.Raw)
		if err != nil {
			return nil, err
		}
		res.Raw = compressed
	}
	return res, nil
}

func (g *Generator) payload(itemType string) map[string]interface{} {
	f := g.faker
	switch itemType {
	case "session":
		return map[string]interface{}{
			"sid":    f.UUID(),
			"status": f.RandomString([]string{"ok", "exited", "crashed", "abnormal"}),
			"errors": f.Number(0, 5),
			"attrs":  map[string]string{"release": f.AppName() + "@" + f.AppVersion()},
		}
	case "transaction":
		return map[string]interface{}{
			"transaction":     "/" + f.Word() + "/" + f.Word(),
			"start_timestamp": f.Float64Range(1.7e9, 1.8e9),
			"spans":           []interface{}{},
		}
	default:
		return map[string]interface{}{
			"message":  f.Sentence(8),
			"level":    f.RandomString([]string{"debug", "info", "warning", "error", "fatal"}),
			"platform": "csharp",
			"user": map[string]string{
				"username":   f.Username(),
				"ip_address": f.IPv4Address(),
			},
		}
	}
}

// binary returns size bytes that are not valid UTF-8 and contain no newline.
func (g *Generator) binary(size int) []byte {
	out := make([]byte, size)
	out[0] = 0xff
	for i := 1; i < size; i++ {
		b := g.faker.Uint8()
		if b == '\n' {
			b = 0x00
		}
		out[i] = b
	}
	return out
}

func writeLine(buf *bytes.Buffer, v interface{}) error {
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

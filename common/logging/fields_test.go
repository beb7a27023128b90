package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		key      string
		expected string
	}{
		{name: "service", attr: Service("crash-test-server"), key: FieldService, expected: "crash-test-server"},
		{name: "method", attr: Method("POST"), key: FieldMethod, expected: "POST"},
		{name: "path", attr: Path("/api/1/envelope/"), key: FieldPath, expected: "/api/1/envelope/"},
		{name: "status", attr: Status(200), key: FieldStatus, expected: "200"},
		{name: "duration", attr: Duration(12), key: FieldDuration, expected: "12"},
		{name: "error", attr: Error(errors.New("boom")), key: FieldError, expected: "boom"},
		{name: "envelope id", attr: EnvelopeID("abc"), key: FieldEnvelopeID, expected: "abc"},
		{name: "file", attr: File("/tmp/x.json"), key: FieldFile, expected: "/tmp/x.json"},
		{name: "bytes", attr: Bytes(4), key: FieldBytes, expected: "4"},
		{name: "body", attr: Body("{}"), key: FieldBody, expected: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("expected key %q, got %q", tt.key, tt.attr.Key)
			}
			if tt.attr.Value.String() != tt.expected {
				t.Errorf("expected value %q, got %q", tt.expected, tt.attr.Value.String())
			}
		})
	}
}

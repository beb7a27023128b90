package logging

import "log/slog"

// Common field names for consistent logging across the mock servers.
const (
	FieldService    = "service"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldEnvelopeID = "envelope_id"
	FieldFile       = "file"
	FieldBytes      = "bytes"
	FieldBody       = "body"
	FieldClientIP   = "client_ip"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// Method returns a slog attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String(FieldMethod, method)
}

// Path returns a slog attribute for the HTTP path.
func Path(path string) slog.Attr {
	return slog.String(FieldPath, path)
}

// Status returns a slog attribute for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// EnvelopeID returns a slog attribute for a stored envelope ID.
func EnvelopeID(id string) slog.Attr {
	return slog.String(FieldEnvelopeID, id)
}

// File returns a slog attribute for a file path.
func File(path string) slog.Attr {
	return slog.String(FieldFile, path)
}

// Bytes returns a slog attribute for a byte count.
func Bytes(n int) slog.Attr {
	return slog.Int(FieldBytes, n)
}

// Body returns a slog attribute for a (truncated) request body.
func Body(preview string) slog.Attr {
	return slog.String(FieldBody, preview)
}

// ClientIP returns a slog attribute for the address a request came from.
func ClientIP(ip string) slog.Attr {
	return slog.String(FieldClientIP, ip)
}

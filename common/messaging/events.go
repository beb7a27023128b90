package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// EnvelopeSaved is the payload published on SubjectEnvelopesSaved.
type EnvelopeSaved struct {
	ID             string    `json:"id"`
	Path           string    `json:"path"`
	Size           int       `json:"size"`
	Items          int       `json:"items"`
	BinaryPayloads int       `json:"binary_payloads"`
	Compressed     bool      `json:"compressed"`
	RequestID      string    `json:"request_id,omitempty"`
	ReceivedAt     time.Time `json:"received_at"`
}

// Message encodes the event for SubjectEnvelopesSaved. The request ID is
// repeated as metadata so subscribers can correlate without decoding.
func (e EnvelopeSaved) Message() (*Message, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope event: %w", err)
	}
	msg := &Message{
		Subject:   SubjectEnvelopesSaved,
		Data:      data,
		Timestamp: e.ReceivedAt,
	}
	if e.RequestID != "" {
		msg.Metadata = map[string]string{MetadataRequestID: e.RequestID}
	}
	return msg, nil
}

// ParseEnvelopeSaved decodes an event published by EnvelopeSaved.Message.
// A missing request_id field falls back to the message metadata.
func ParseEnvelopeSaved(msg *Message) (EnvelopeSaved, error) {
	var ev EnvelopeSaved
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		return EnvelopeSaved{}, fmt.Errorf("decode %s event: %w", msg.Subject, err)
	}
	if ev.RequestID == "" {
		ev.RequestID = msg.RequestID()
	}
	return ev, nil
}

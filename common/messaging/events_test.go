package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeSaved_Message(t *testing.T) {
	received := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := EnvelopeSaved{
		ID:             "0b6f2b0e-6a56-4c1f-9d0c-1b0e5b7f6a11",
		Path:           "/tmp/envelopes/envelope_0b6f2b0e-6a56-4c1f-9d0c-1b0e5b7f6a11.json",
		Size:           42,
		Items:          2,
		BinaryPayloads: 1,
		Compressed:     true,
		RequestID:      "req-1",
		ReceivedAt:     received,
	}

	msg, err := ev.Message()
	require.NoError(t, err)
	assert.Equal(t, SubjectEnvelopesSaved, msg.Subject)
	assert.Equal(t, received, msg.Timestamp)
	assert.Equal(t, "req-1", msg.Metadata[MetadataRequestID])

	parsed, err := ParseEnvelopeSaved(msg)
	require.NoError(t, err)
	assert.Equal(t, ev, parsed)
}

func TestEnvelopeSaved_MessageWithoutRequestID(t *testing.T) {
	msg, err := EnvelopeSaved{ID: "x"}.Message()
	require.NoError(t, err)
	assert.Nil(t, msg.Metadata)
	assert.NotContains(t, string(msg.Data), "request_id")
}

func TestParseEnvelopeSaved(t *testing.T) {
	tests := []struct {
		name      string
		msg       *Message
		wantReqID string
		wantErr   bool
	}{
		{
			name:      "request id from metadata",
			msg:       &Message{Subject: SubjectEnvelopesSaved, Data: []byte(`{"id":"a"}`), Metadata: map[string]string{"X-Request-Id": "req-9"}},
			wantReqID: "req-9",
		},
		{
			name:      "body wins over metadata",
			msg:       &Message{Subject: SubjectEnvelopesSaved, Data: []byte(`{"id":"a","request_id":"req-1"}`), Metadata: map[string]string{"X-Request-Id": "req-9"}},
			wantReqID: "req-1",
		},
		{
			name:    "not json",
			msg:     &Message{Subject: SubjectEnvelopesSaved, Data: []byte("not json")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseEnvelopeSaved(tt.msg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), SubjectEnvelopesSaved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", ev.ID)
			assert.Equal(t, tt.wantReqID, ev.RequestID)
		})
	}
}

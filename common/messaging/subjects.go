package messaging

// Subject names follow {system}.{resource}.{action}.
const (
	// SubjectEnvelopesSaved carries one JSON event per envelope written to disk.
	SubjectEnvelopesSaved = "mockservers.envelopes.saved"

	// SubjectEnvelopesAll matches every envelope subject.
	SubjectEnvelopesAll = "mockservers.envelopes.>"
)

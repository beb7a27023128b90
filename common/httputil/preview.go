package httputil

import (
	"encoding/hex"
	"unicode/utf8"
)

// DefaultPreviewLimit is how many characters of a body end up in request logs.
const DefaultPreviewLimit = 1000

// BodyPreview renders a request body for logging: the text itself when it is
// UTF-8, its hex encoding otherwise, cut to at most limit characters.
func BodyPreview(body []byte, limit int) string {
	var text string
	if utf8.Valid(body) {
		text = string(body)
	} else {
		text = hex.EncodeToString(body)
	}

	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	n := 0
	for i := range text {
		if n == limit {
			return text[:i]
		}
		n++
	}
	return text
}

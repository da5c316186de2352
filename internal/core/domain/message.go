package domain

import "strings"

// RawMessage is a single SMS notification as it appears in the backup export.
// It is never mutated after decoding; the engine works on copies of Body.
type RawMessage struct {
	Body         string  // message text, the only attribute the engine requires
	Date         int64   // epoch milliseconds from the export
	ReadableDate string  // human-readable timestamp from the export
	Address      string  // sending shortcode or number (e.g. "M-Money")
	Type         *string // export message type flag (1 = received)
	Protocol     *string
	ContactName  *string
}

// HasBody reports whether the message carries any text at all.
// A message without a body is the only per-message hard failure.
func (m RawMessage) HasBody() bool {
	return strings.TrimSpace(m.Body) != ""
}

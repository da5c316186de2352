package models

// RawSMS is the raw_sms table row: one input message stored verbatim.
type RawSMS struct {
	Protocol      *string `json:"protocol"`
	Address       string  `json:"address"`
	DateTimestamp int64   `json:"dateTimestamp"`
	Type          *string `json:"type"`
	Body          string  `json:"body"`
	ReadableDate  string  `json:"readableDate"`
	ContactName   *string `json:"contactName"`
	Processed     bool    `json:"processed"`
}

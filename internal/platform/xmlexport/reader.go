// Package xmlexport reads SMS Backup & Restore XML exports into raw messages.
package xmlexport

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
)

// smsElement mirrors one <sms .../> element of the export.
type smsElement struct {
	Protocol     string `xml:"protocol,attr"`
	Address      string `xml:"address,attr"`
	Date         string `xml:"date,attr"`
	Type         string `xml:"type,attr"`
	Body         string `xml:"body,attr"`
	ReadableDate string `xml:"readable_date,attr"`
	ContactName  string `xml:"contact_name,attr"`
}

// smsExport mirrors the <smses> document root.
type smsExport struct {
	XMLName xml.Name     `xml:"smses"`
	Count   string       `xml:"count,attr"`
	SMS     []smsElement `xml:"sms"`
}

// ReadFile loads and parses an export file. Any read or parse failure wraps
// apperrors.ErrFatalInput: an unreadable source aborts the whole run.
func ReadFile(path string) ([]domain.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrFatalInput, path, err)
	}
	return Parse(data)
}

// Parse decodes export bytes into raw messages. Per-message attribute oddities
// (unparsable dates, missing optionals) do not fail the parse; only malformed
// XML does.
func Parse(data []byte) ([]domain.RawMessage, error) {
	var export smsExport
	if err := xml.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: invalid sms export: %v", apperrors.ErrFatalInput, err)
	}

	messages := make([]domain.RawMessage, 0, len(export.SMS))
	for _, sms := range export.SMS {
		messages = append(messages, domain.RawMessage{
			Body:         sms.Body,
			Date:         parseEpochMillis(sms.Date),
			ReadableDate: sms.ReadableDate,
			Address:      sms.Address,
			Type:         optional(sms.Type),
			Protocol:     optional(sms.Protocol),
			ContactName:  optional(sms.ContactName),
		})
	}
	return messages, nil
}

// parseEpochMillis returns 0 on unparsable input; the builder substitutes
// ingestion time for missing dates.
func parseEpochMillis(s string) int64 {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return ms
}

// optional maps the export's empty and "null" attribute values to absent.
func optional(s string) *string {
	if s == "" || s == "null" {
		return nil
	}
	return &s
}

package xmlexport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/platform/xmlexport"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<smses count="2">
  <sms protocol="0" address="M-Money" date="1715000000000" type="1"
       body="You have received 5,000 RWF from Jane Doe (*********123). TxId: 998877"
       readable_date="6 May 2024 15:33:20" contact_name="(Unknown)" />
  <sms protocol="null" address="M-Money" date="not-a-number" type=""
       body="" readable_date="" contact_name="null" />
</smses>`

func TestParse(t *testing.T) {
	messages, err := xmlexport.Parse([]byte(sampleExport))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	first := messages[0]
	assert.Equal(t, "You have received 5,000 RWF from Jane Doe (*********123). TxId: 998877", first.Body)
	assert.Equal(t, int64(1715000000000), first.Date)
	assert.Equal(t, "6 May 2024 15:33:20", first.ReadableDate)
	assert.Equal(t, "M-Money", first.Address)
	require.NotNil(t, first.Protocol)
	assert.Equal(t, "0", *first.Protocol)
	require.NotNil(t, first.Type)
	assert.Equal(t, "1", *first.Type)
	require.NotNil(t, first.ContactName)
	assert.Equal(t, "(Unknown)", *first.ContactName)

	second := messages[1]
	assert.Empty(t, second.Body)
	assert.Equal(t, int64(0), second.Date, "unparsable date attribute maps to zero")
	assert.Nil(t, second.Protocol, `"null" attribute value is absent`)
	assert.Nil(t, second.Type, "empty attribute value is absent")
	assert.Nil(t, second.ContactName)
}

func TestParseEmptyExport(t *testing.T) {
	messages, err := xmlexport.Parse([]byte(`<smses count="0"></smses>`))
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestParseMalformedXML(t *testing.T) {
	_, err := xmlexport.Parse([]byte(`<smses><sms`))
	assert.ErrorIs(t, err, apperrors.ErrFatalInput)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0o600))

	messages, err := xmlexport.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestReadFileMissing(t *testing.T) {
	_, err := xmlexport.ReadFile(filepath.Join(t.TempDir(), "absent.xml"))
	assert.ErrorIs(t, err, apperrors.ErrFatalInput)
}

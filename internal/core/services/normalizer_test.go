package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkabera/momotrack/internal/core/services"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input yields empty string",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only yields empty string",
			in:   "   \t \n ",
			want: "",
		},
		{
			name: "collapses whitespace runs",
			in:   "You   have\treceived\n5,000 RWF",
			want: "You have received 5,000 RWF",
		},
		{
			name: "keeps extraction punctuation",
			in:   "TxId: 12345. Fee was: 100 RWF (*162*) balance, token 1234-5678",
			want: "TxId: 12345. Fee was: 100 RWF (*162*) balance, token 1234-5678",
		},
		{
			name: "strips characters outside the alphabet",
			in:   "Amount; 5000 RWF! @M-Money #now",
			want: "Amount 5000 RWF M-Money now",
		},
		{
			name: "preserves case",
			in:   "  Bank Deposit has been ADDED  ",
			want: "Bank Deposit has been ADDED",
		},
		{
			name: "keeps masked phone asterisks",
			in:   "from Jane Doe (*********123)",
			want: "from Jane Doe (*********123)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeText(tt.in))
		})
	}
}

func TestNormalizeTextIsIdempotent(t *testing.T) {
	in := "  You have   received 5,000 RWF from Jane Doe (*********123).  "
	once := services.NormalizeText(in)
	assert.Equal(t, once, services.NormalizeText(once))
}

package gmail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
		{
			name: "carriage returns removed",
			in:   "line one\r\nline two\r\n",
			want: "line one\nline two",
		},
		{
			name: "tabs become spaces",
			in:   "a\tb",
			want: "a b",
		},
		{
			name: "runs of spaces collapse",
			in:   "too    many     spaces",
			want: "too many spaces",
		},
		{
			name: "blank lines dropped",
			in:   "first\n\n\n\nsecond",
			want: "first\nsecond",
		},
		{
			name: "lines trimmed",
			in:   "   padded   \n  also padded  ",
			want: "padded\nalso padded",
		},
		{
			name: "zero width characters stripped",
			in:   "invi​si‌ble\uFEFF",
			want: "invisible",
		},
		{
			name: "utm parameters stripped",
			in:   "see https://example.com/page?utm_source=newsletter for details",
			want: "see https://example.com/page for details",
		},
		{
			name: "parenthesised url unwrapped",
			in:   "click here ( https://example.com/x )",
			want: "click here https://example.com/x",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "\n\n  body  \n\n",
			want: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.in))
		})
	}
}

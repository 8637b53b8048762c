package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in           string
		decimalComma bool
		want         string
	}{
		{"1,200", false, "1200"},
		{"1,200.75", false, "1200.75"},
		{"1.200,75", true, "1200.75"},
		{"600,5", true, "600.5"},
		{" 1500 mm ", false, "1500"},
		{"Rs. 4,500", false, "4500"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNumber(tt.in, tt.decimalComma)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	_, err := parseNumber("twelve", false)
	assert.Error(t, err)
}

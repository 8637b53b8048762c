package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "Rs. 31,860.00", document.Money(31860))
	assert.Equal(t, "Rs. 0.00", document.Money(0))
	assert.Equal(t, "Rs. 12.50", document.Money(12.5))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "double-glazed", want: "Double Glazed"},
		{in: "upvc", want: "uPVC"},
		{in: "center", want: "Center"},
		{in: "  ", want: "N/A"},
		{in: "", want: "N/A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, document.Label(tt.in), tt.in)
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name, number, want string
	}{
		{name: "Plain", number: "QT-2026-0007", want: "Quotation_QT-2026-0007_2026-03-14.pdf"},
		{name: "Unsafe", number: "QT/2026 #7", want: "Quotation_QT_2026_7_2026-03-14.pdf"},
		{name: "Empty", number: "", want: "Quotation_Draft_2026-03-14.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, document.Filename(tt.number, at))
		})
	}
}

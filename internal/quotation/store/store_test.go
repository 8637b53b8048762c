package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "sharma", want: `%sharma%`},
		{in: "100%", want: `%100\%%`},
		{in: "QT_2026", want: `%QT\_2026%`},
		{in: `a\b`, want: `%a\\b%`},
		{in: `%_\`, want: `%\%\_\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.in))
		})
	}
}

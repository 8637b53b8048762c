package request_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fenestra/internal/http/request"
)

type item struct {
	Width *float64 `json:"width" validate:"required,gt=0"`
}

type payload struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=draft approved"`
	Items  []item `json:"items" validate:"required,min=1,dive"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "Valid",
			body: `{"name":"A","items":[{"width":10}]}`,
		},
		{
			name:    "Malformed JSON",
			body:    `{"name":`,
			wantErr: "invalid request body",
		},
		{
			name:    "Missing Name",
			body:    `{"items":[{"width":10}]}`,
			wantErr: "name is required",
		},
		{
			name:    "Bad Enum",
			body:    `{"name":"A","status":"lost","items":[{"width":10}]}`,
			wantErr: "status must be one of [draft approved]",
		},
		{
			name:    "Nested Field",
			body:    `{"name":"A","items":[{"width":0}]}`,
			wantErr: "items[0].width must be gt 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var p payload

			err := request.Decode(r, &p)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package sheet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/fenestra/internal/importer/sheet"
	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func TestParser_Measurement(t *testing.T) {
	csv := `Site measurement,Sharma residence
Measured by,Anil
,
Name,Type,Location,Width (mm),Height (mm),Qty,Glass,Frame,Base Price,Rate per sq ft
Hall,sliding,Living room,"1,500",1200,2,Toughened 8mm,upvc,"4,500",350
Kitchen,casement,Kitchen,900,1000,,,,,
`

	drafts, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	hall := drafts[0]
	assert.Equal(t, "Hall", *hall.Name)
	assert.Equal(t, "sliding", *hall.Type)
	assert.Equal(t, "Living room", *hall.Location)
	assert.Equal(t, 1500.0, *hall.Width)
	assert.Equal(t, 1200.0, *hall.Height)
	assert.Equal(t, 2, *hall.Quantity)
	assert.Equal(t, "toughened", *hall.GlassType)
	assert.Equal(t, "8mm", *hall.GlassThickness)
	assert.Equal(t, "upvc", *hall.FrameMaterial)
	assert.Equal(t, 4500.0, *hall.BasePrice)
	assert.Equal(t, 350.0, *hall.SqFtPrice)

	kitchen := drafts[1]
	assert.Equal(t, "casement", *kitchen.Type)
	assert.Nil(t, kitchen.Quantity)
	assert.Nil(t, kitchen.GlassType)
	assert.Nil(t, kitchen.BasePrice)
}

func TestParser_Site(t *testing.T) {
	csv := `Ref;Room;Window;W;H;Nos
W1;Bedroom;bay;1.800,5;1200;1
W2;Bedroom;skylight;600;600;3
`

	drafts, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "W1", *drafts[0].Name)
	assert.Equal(t, 1800.5, *drafts[0].Width)
	assert.Equal(t, "Bedroom", *drafts[0].Location)

	assert.Equal(t, "skylight", *drafts[1].Type)
	assert.Equal(t, 3, *drafts[1].Quantity)
}

func TestParser_Windows1252(t *testing.T) {
	csv := "Ref;Room;Window;W;H\nW1;Caf\xe9;fixed;900;900\n"

	drafts, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Café", *drafts[0].Location)
}

func TestParser_Rows(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		wantLen int
		verify  func(t *testing.T, drafts []window.Draft)
		wantErr error
	}

	header := "Name,Type,Width (mm),Height (mm)\n"

	tests := []testCase{
		{
			name:    "Empty File",
			csv:     "",
			wantLen: 0,
		},
		{
			name:    "Header Only",
			csv:     header,
			wantLen: 0,
		},
		{
			name:    "Missing Dimensions Skipped",
			csv:     header + "A,fixed,,900\nB,fixed,900,0\nC,fixed,abc,900\nD,fixed,900,900\n",
			wantLen: 1,
			verify: func(t *testing.T, drafts []window.Draft) {
				assert.Equal(t, "D", *drafts[0].Name)
			},
		},
		{
			name:    "Unknown Type Kept",
			csv:     header + "Odd,round-ish,700,700\n",
			wantLen: 1,
			verify: func(t *testing.T, drafts []window.Draft) {
				assert.Equal(t, "round-ish", *drafts[0].Type)
			},
		},
		{
			name:    "Unit Suffix",
			csv:     header + "A,fixed,1200 mm,900mm\n",
			wantLen: 1,
			verify: func(t *testing.T, drafts []window.Draft) {
				assert.Equal(t, 1200.0, *drafts[0].Width)
				assert.Equal(t, 900.0, *drafts[0].Height)
			},
		},
		{
			name:    "Different Column Order",
			csv:     "HEIGHT (MM),Name,Width (mm),Type\n1000,A,800,awning\n",
			wantLen: 1,
			verify: func(t *testing.T, drafts []window.Draft) {
				assert.Equal(t, 800.0, *drafts[0].Width)
				assert.Equal(t, 1000.0, *drafts[0].Height)
			},
		},
		{
			name:    "Fractional Quantity",
			csv:     "Name,Type,Width (mm),Height (mm),Qty\nA,fixed,900,900,1\nB,fixed,900,900,2.7\n",
			wantErr: sheet.ErrInvalidCount,
		},
		{
			name:    "Zero Quantity",
			csv:     "Name,Type,Width (mm),Height (mm),Qty\nA,fixed,900,900,0\n",
			wantErr: sheet.ErrInvalidCount,
		},
		{
			name:    "Fractional Panels",
			csv:     "Name,Type,Width (mm),Height (mm),Panels\nA,sliding,900,900,0.5\n",
			wantErr: sheet.ErrInvalidCount,
		},
		{
			name:    "Whole Counts",
			csv:     "Name,Type,Width (mm),Height (mm),Qty,Panels\nA,sliding,900,900,3.0,4\n",
			wantLen: 1,
			verify: func(t *testing.T, drafts []window.Draft) {
				assert.Equal(t, 3, *drafts[0].Quantity)
				assert.Equal(t, 4, *drafts[0].Panels)
			},
		},
		{
			name:    "Unknown Layout",
			csv:     "Date,Description,Amount\n01-01-2026,Coffee,3\n",
			wantErr: sheet.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sheet.NewParser().Parse(strings.NewReader(tt.csv))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			if tt.verify != nil {
				tt.verify(t, got)
			}
		})
	}
}

func TestParser_EncodedSheet(t *testing.T) {
	raw := "Name,Type,Width (mm),Height (mm),Location\nA,fixed,900,900,Salão\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(raw)
	require.NoError(t, err)

	drafts, err := sheet.NewParser().Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Salão", *drafts[0].Location)
}

func TestParser_FractionalQuantityRow(t *testing.T) {
	csv := "Name,Type,Width (mm),Height (mm),Qty\nA,fixed,900,900,1\nB,fixed,900,900,2.7\n"

	_, err := sheet.NewParser().Parse(strings.NewReader(csv))
	assert.EqualError(t, err, `row 3: quantity: "2.7" is not a positive whole number`)
}

func TestParser_GlassOption(t *testing.T) {
	tests := []struct {
		cell          string
		wantOption    string
		wantSurcharge float64
	}{
		{cell: "clear 6mm", wantOption: "clear-6mm", wantSurcharge: 180},
		{cell: "Toughened 10 mm", wantOption: "toughened-10mm", wantSurcharge: 550},
		{cell: "double glazed", wantOption: "double-glazed", wantSurcharge: 800},
		{cell: "frosted", wantOption: "frosted-5mm", wantSurcharge: 220},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			csv := "Type,Name,Width (mm),Height (mm),Glass\nsliding,A,1000,1000," + tt.cell + "\n"

			drafts, err := sheet.NewParser().Parse(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, drafts, 1)

			spec := window.Resolve(drafts[0])
			assert.Equal(t, tt.wantOption, spec.Options.GlassOption())
			assert.Equal(t, tt.wantSurcharge, pricing.GlassSurcharge(spec.Options.GlassOption()))
		})
	}
}

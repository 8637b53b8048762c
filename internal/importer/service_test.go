package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/importer"
	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const measurementSheet = `Name,Type,Width (mm),Height (mm),Qty,Base Price,Rate per sq ft
Hall,sliding,1500,1200,2,4000,300
Loft,,600,600,,,
`

func TestService_Import(t *testing.T) {
	specs, err := importer.NewService(nil).Import(importer.FormatSheet, strings.NewReader(measurementSheet))
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, window.TypeSliding, specs[0].Type)
	assert.Equal(t, 2, specs[0].Pricing.Quantity)
	assert.Equal(t, 1500.0, specs[0].Dimensions.Width)

	assert.Equal(t, window.DefaultType, specs[1].Type)
	assert.Equal(t, window.DefaultQuantity, specs[1].Pricing.Quantity)
}

func TestService_Import_Errors(t *testing.T) {
	svc := importer.NewService(nil)

	_, err := svc.Import("xlsx", strings.NewReader(measurementSheet))
	assert.EqualError(t, err, "unknown import format: xlsx")

	_, err = svc.Import(importer.FormatSheet, strings.NewReader("Name,Type,Width (mm),Height (mm)\nA,fixed,,\n"))
	assert.ErrorIs(t, err, importer.ErrNoRows)

	_, err = svc.Import(importer.FormatSheet, strings.NewReader("Name,Type,Width (mm),Height (mm),Panels\nA,sliding,900,900,1000000\n"))
	assert.ErrorIs(t, err, window.ErrInvalidLayout)
	assert.ErrorContains(t, err, "row 1")
}

func TestService_Import_GlassSurcharge(t *testing.T) {
	sheet := "Name,Type,Width (mm),Height (mm),Glass\nStudy,casement,1000,1000,clear 6mm\n"

	specs, err := importer.NewService(nil).Import(importer.FormatSheet, strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, specs, 1)

	assert.Equal(t, "clear-6mm", specs[0].Options.GlassOption())
	assert.Equal(t, 180.0, pricing.GlassSurcharge(specs[0].Options.GlassOption()))
}

func TestService_ImportInto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quotation.NewMockRepository(ctrl)
	id := uuid.New()

	existing := &quotation.Quotation{
		ID:     id,
		Number: "QT-2026-0007",
		Client: quotation.Client{Name: "Meera"},
		Specs:  []window.Specification{window.Resolve(window.Draft{Name: new("Porch"), Width: new(900.0), Height: new(900.0)})},
	}

	repo.EXPECT().GetQuotation(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateQuotation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *quotation.Quotation) error {
			assert.Len(t, q.Specs, 3)
			return nil
		})

	svc := importer.NewService(quotation.NewService(repo, nil, quotation.Settings{}))

	q, n, err := svc.ImportInto(context.Background(), id, importer.FormatSheet, strings.NewReader(measurementSheet))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, q.Specs, 3)
	assert.Positive(t, q.Pricing.GrandTotal)
}

package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func clock() time.Time {
	return time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC)
}

func spec(name string) window.Specification {
	width, height, base, sqft := 1000.0, 1200.0, 4000.0, 250.0

	return window.Resolve(window.Draft{
		Name:      &name,
		Width:     &width,
		Height:    &height,
		BasePrice: &base,
		SqFtPrice: &sqft,
	})
}

func newService(t *testing.T, repo *quotation.MockRepository) *Service {
	t.Helper()

	svc := quotation.NewService(repo, nil, quotation.Settings{})
	renderer := document.NewRenderer(document.Config{}).WithClock(clock)

	return NewService(svc, renderer, 2)
}

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quotation.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetQuotation(gomock.Any(), id).Return(&quotation.Quotation{
		ID:     id,
		Number: "QT-2023-0001",
		Client: quotation.Client{Name: "Ravi"},
		Specs:  []window.Specification{spec("Hall")},
	}, nil)

	doc, err := newService(t, repo).Export(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Quotation_QT-2023-0001_2023-10-27.pdf", doc.Filename)
	assert.NotEmpty(t, doc.Content)
}

func TestService_Export_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quotation.NewMockRepository(ctrl)
	repo.EXPECT().GetQuotation(gomock.Any(), gomock.Any()).Return(nil, quotation.ErrNotFound)

	_, err := newService(t, repo).Export(context.Background(), uuid.New())
	assert.ErrorIs(t, err, quotation.ErrNotFound)
}

func TestService_ExportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quotation.NewMockRepository(ctrl)

	q1 := &quotation.Quotation{ID: uuid.New(), Number: "QT-2023-0001", Client: quotation.Client{Name: "A"}, Specs: []window.Specification{spec("One")}}
	q2 := &quotation.Quotation{ID: uuid.New(), Number: "QT-2023-0002", Client: quotation.Client{Name: "B"}}
	q3 := &quotation.Quotation{ID: uuid.New(), Number: "QT-2023-0003", Client: quotation.Client{Name: "C"}, Specs: []window.Specification{spec("Two"), spec("Three")}}

	repo.EXPECT().ListQuotations(gomock.Any(), gomock.Any()).Return([]*quotation.Quotation{q1, q2, q3}, nil)

	dir := t.TempDir()

	items, err := newService(t, repo).ExportBatch(context.Background(), quotation.ListFilter{}, dir)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Same(t, q1, items[0].Quotation)
	assert.Equal(t, filepath.Join(dir, "Quotation_QT-2023-0001_2023-10-27.pdf"), items[0].FilePath)

	assert.Same(t, q2, items[1].Quotation)
	assert.Empty(t, items[1].FilePath)

	content, err := os.ReadFile(items[2].FilePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF-"))
}

func TestService_ExportBatch_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := quotation.NewMockRepository(ctrl)
	repo.EXPECT().ListQuotations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := newService(t, repo).ExportBatch(context.Background(), quotation.ListFilter{}, t.TempDir())
	assert.EqualError(t, err, "listing quotations: db down")
}

func TestService_GenerateSummary(t *testing.T) {
	s := &Service{}

	items := []Item{
		{
			Quotation: &quotation.Quotation{
				Number:  "QT-2023-0001",
				Status:  quotation.StatusApproved,
				Client:  quotation.Client{Name: "Hosting Co"},
				Pricing: pricing.Totals{GrandTotal: 31860},
			},
			FilePath: "/tmp/Quotation_QT-2023-0001_2023-10-27.pdf",
		},
		{
			Quotation: &quotation.Quotation{
				Number:  "QT-2023-0002",
				Status:  quotation.StatusDraft,
				Client:  quotation.Client{Name: "Empty"},
				Pricing: pricing.Totals{},
			},
		},
	}

	body := s.GenerateSummary(items)

	for _, sub := range []string{
		"* QT-2023-0001 | Hosting Co | Approved | Rs. 31,860.00 | Quotation_QT-2023-0001_2023-10-27.pdf",
		"* QT-2023-0002 | Empty | Draft | Rs. 0.00 | No specifications",
		"2 quotations, Rs. 31,860.00 in total",
	} {
		assert.Contains(t, body, sub)
	}
}

package view

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/importer"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

const measurementSheet = `Name,Location,Type,Width (mm),Height (mm),Qty,Base Price,Rate per sq ft
Hall,Ground floor,sliding,1200,1500,2,5000,300
Bedroom,First floor,casement,900,1200,1,4000,250
`

func newImport(t *testing.T) (ImportModel, *quotation.MockRepository) {
	t.Helper()

	repo := quotation.NewMockRepository(gomock.NewController(t))
	svc := quotation.NewService(repo, nil, quotation.Settings{GSTRate: 0.18}).
		WithClock(func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) })

	return NewImportModel(svc, importer.NewService(svc)), repo
}

func TestImport_ParseAndSave(t *testing.T) {
	m, repo := newImport(t)

	path := filepath.Join(t.TempDir(), "site.csv")
	require.NoError(t, os.WriteFile(path, []byte(measurementSheet), 0o644))

	m.path = path
	next, _ := m.Update(m.parseCmd(path)())
	m = next.(ImportModel)

	require.Equal(t, importStatePreview, m.state)
	require.Len(t, m.specs, 2)
	assert.Contains(t, m.viewSpecs(), "2 windows read from")

	m.fields.Client = "R. Sharma"

	repo.EXPECT().NextNumber(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q *quotation.Quotation) error {
			assert.Equal(t, "R. Sharma", q.Client.Name)
			assert.Equal(t, "Imported from site.csv", q.Notes)
			assert.Len(t, q.Specs, 2)

			return nil
		})

	next, _ = m.Update(m.saveCmd()())
	m = next.(ImportModel)

	assert.Equal(t, importStateResult, m.state)
	require.NoError(t, m.err)
	assert.Contains(t, m.status, "QT-2026-0003")
}

func TestImport_ParseError(t *testing.T) {
	m, _ := newImport(t)

	next, _ := m.Update(m.parseCmd(filepath.Join(t.TempDir(), "missing.csv"))())
	m = next.(ImportModel)

	assert.Equal(t, importStateResult, m.state)
	assert.Error(t, m.err)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ImportModel)

	assert.Equal(t, importStateFilePick, m.state)
	assert.NoError(t, m.err)
}

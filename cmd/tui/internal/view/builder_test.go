package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func newBuilder(t *testing.T) (BuilderModel, *quotation.MockRepository) {
	t.Helper()

	repo := quotation.NewMockRepository(gomock.NewController(t))
	svc := quotation.NewService(repo, nil, quotation.Settings{
		NumberPrefix: "QT",
		GSTRate:      0.18,
		Charges:      quotation.Charges{Transport: 1000},
	}).WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	})

	m := NewBuilderModel(svc)
	m.client.Name = "R. Sharma"

	return m, repo
}

func builderSpec(name string) window.Specification {
	w, h, base, sqft := 929.03, 1000.0, 1000.0, 100.0

	return window.Resolve(window.Draft{
		Name:      &name,
		Width:     &w,
		Height:    &h,
		BasePrice: &base,
		SqFtPrice: &sqft,
	})
}

func press(t *testing.T, m BuilderModel, key tea.KeyMsg) (BuilderModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(key)
	bm, ok := next.(BuilderModel)
	require.True(t, ok)

	return bm, cmd
}

func TestBuilder_KeepSpec(t *testing.T) {
	m, _ := newBuilder(t)

	spec := builderSpec("Hall")
	m.state = builderStateSpec
	m.specForm = NewSpecForm(&spec)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, builderStateReview, m.state)
	require.Len(t, m.specs, 1)
	assert.Equal(t, "Hall", m.specs[0].Name)
	assert.Positive(t, m.specs[0].Computed.TotalPrice)
}

func TestBuilder_KeepSpec_Invalid(t *testing.T) {
	m, _ := newBuilder(t)

	m.state = builderStateSpec
	m.specForm = NewSpecForm(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, builderStateSpec, m.state)
	assert.Empty(t, m.specs)
	assert.Contains(t, m.status, window.ErrInvalidDimensions.Error())
}

func TestBuilder_EditReplacesSpec(t *testing.T) {
	m, _ := newBuilder(t)
	m.state = builderStateReview
	m.specs = []window.Specification{builderSpec("Hall"), builderSpec("Kitchen")}
	m.cursor = 1

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Equal(t, builderStateSpec, m.state)
	assert.Equal(t, 1, m.editing)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.specs, 2)
	assert.Equal(t, "Kitchen", m.specs[1].Name)
	assert.Equal(t, -1, m.editing)
}

func TestBuilder_Delete(t *testing.T) {
	m, _ := newBuilder(t)
	m.state = builderStateReview
	m.specs = []window.Specification{builderSpec("Hall"), builderSpec("Kitchen"), builderSpec("Bath")}
	m.cursor = 2

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	require.Len(t, m.specs, 2)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "Kitchen", m.specs[1].Name)
}

func TestBuilder_RunningTotals(t *testing.T) {
	m, _ := newBuilder(t)
	m.specs = []window.Specification{builderSpec("Hall")}
	m.state = builderStateReview

	saved := m.totals()
	assert.Equal(t, 1000.0, saved.TransportCost)

	spec := builderSpec("Kitchen")
	m.state = builderStateSpec
	m.specForm = NewSpecForm(&spec)

	withDraft := m.totals()
	assert.InDelta(t, saved.Subtotal*2, withDraft.Subtotal, 1e-6)
	assert.Greater(t, withDraft.GrandTotal, saved.GrandTotal)
}

func TestBuilder_Save(t *testing.T) {
	m, repo := newBuilder(t)
	m.state = builderStateReview
	m.specs = []window.Specification{builderSpec("Hall")}

	repo.EXPECT().NextNumber(gomock.Any()).Return(int64(12), nil)
	repo.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, builderStateSaving, m.state)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(BuilderModel)

	require.Equal(t, builderStateDone, m.state)
	assert.Equal(t, "QT-2026-0012", m.saved.Number)
	assert.Equal(t, "R. Sharma", m.saved.Client.Name)
	assert.Contains(t, m.View(), "QT-2026-0012")
}

func TestBuilder_SaveRequiresWindows(t *testing.T) {
	m, _ := newBuilder(t)
	m.state = builderStateReview

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, builderStateReview, m.state)
	assert.NotEmpty(t, m.status)
}

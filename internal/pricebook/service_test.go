package pricebook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pricebook.NewMockRepository(ctrl)
	svc := pricebook.NewService(repo)

	want := pricebook.Rates{BasePrice: 4500, SqFtPrice: 320}
	repo.EXPECT().FindRates(gomock.Any(), window.TypeCasement).Return(want, true, nil)

	got, ok, err := svc.Suggest(context.Background(), window.TypeCasement)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestService_Learn(t *testing.T) {
	type testCase struct {
		name      string
		rates     pricebook.Rates
		setupMock func(m *pricebook.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			rates: pricebook.Rates{BasePrice: 3000, SqFtPrice: 250},
			setupMock: func(m *pricebook.MockRepository) {
				m.EXPECT().
					SaveRates(gomock.Any(), window.TypeSliding, pricebook.Rates{BasePrice: 3000, SqFtPrice: 250}).
					Return(nil)
			},
		},
		{
			name:    "NegativeRates",
			rates:   pricebook.Rates{BasePrice: -1},
			wantErr: pricebook.ErrInvalidRates,
		},
		{
			name:  "RepoError",
			rates: pricebook.Rates{BasePrice: 1},
			setupMock: func(m *pricebook.MockRepository) {
				m.EXPECT().SaveRates(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: errors.New("saving rates for sliding: db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pricebook.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := pricebook.NewService(repo).Learn(context.Background(), window.TypeSliding, tt.rates)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}
}

package budgeting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/measuring"
	measuringmocks "github.com/vfg2006/kpis-manager-api/internal/usecases/measuring/mocks"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func newTestService(t *testing.T) (Budgeter, *mocks.MockStoreMetricsRepository, *measuringmocks.MockPeriodTotaler) {
	ctrl := gomock.NewController(t)
	metricsRepo := mocks.NewMockStoreMetricsRepository(ctrl)
	totaler := measuringmocks.NewMockPeriodTotaler(ctrl)
	return NewService(metricsRepo, totaler, keylock.New()), metricsRepo, totaler
}

func TestService_Upsert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		year     *int
		month    *int
		paf      float64
		setup    func(metricsRepo *mocks.MockStoreMetricsRepository, totaler *measuringmocks.MockPeriodTotaler)
		validate func(t *testing.T, m *domain.StoreMetrics, err error)
	}{
		{
			name:  "Primeiro PAF do período - calcula os percentuais",
			year:  intPtr(2024),
			month: intPtr(3),
			paf:   350,
			setup: func(metricsRepo *mocks.MockStoreMetricsRepository, totaler *measuringmocks.MockPeriodTotaler) {
				metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(nil, nil)
				totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{TotalSales: 400, TotalGoal: 500}, nil)
				metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 350.0, m.Paf)
				assert.InDelta(t, 80.0, m.PercentagePaf, 1e-9)
				assert.InDelta(t, 114.2857, m.PercentagePr, 1e-4)
			},
		},
		{
			name:  "PAF existente é substituído",
			year:  intPtr(2024),
			month: intPtr(3),
			paf:   800,
			setup: func(metricsRepo *mocks.MockStoreMetricsRepository, totaler *measuringmocks.MockPeriodTotaler) {
				metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(&domain.StoreMetrics{ID: 4, Year: 2024, Month: 3, Paf: 350}, nil)
				totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{TotalSales: 400, TotalGoal: 500}, nil)
				metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), m.ID)
				assert.InDelta(t, 50.0, m.PercentagePr, 1e-9)
			},
		},
		{
			name:  "Sem metas no período - percentual PAF zero",
			year:  intPtr(2024),
			month: intPtr(3),
			paf:   100,
			setup: func(metricsRepo *mocks.MockStoreMetricsRepository, totaler *measuringmocks.MockPeriodTotaler) {
				metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(nil, nil)
				totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{TotalSales: 400}, nil)
				metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.0, m.PercentagePaf)
				assert.InDelta(t, 400.0, m.PercentagePr, 1e-9)
			},
		},
		{
			name:  "Ano ausente",
			month: intPtr(3),
			paf:   100,
			setup: func(*mocks.MockStoreMetricsRepository, *measuringmocks.MockPeriodTotaler) {},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				assert.ErrorIs(t, err, domain.ErrBusinessRule)
			},
		},
		{
			name:  "Ano fora do intervalo",
			year:  intPtr(1999),
			month: intPtr(3),
			paf:   100,
			setup: func(*mocks.MockStoreMetricsRepository, *measuringmocks.MockPeriodTotaler) {},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				assert.ErrorIs(t, err, domain.ErrBusinessRule)
			},
		},
		{
			name:  "Erro ao gravar",
			year:  intPtr(2024),
			month: intPtr(3),
			paf:   100,
			setup: func(metricsRepo *mocks.MockStoreMetricsRepository, totaler *measuringmocks.MockPeriodTotaler) {
				metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(nil, nil)
				totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{}, nil)
				metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("disk full"))
			},
			validate: func(t *testing.T, m *domain.StoreMetrics, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao gravar métricas da loja")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, metricsRepo, totaler := newTestService(t)
			tt.setup(metricsRepo, totaler)

			metrics, err := service.Upsert(ctx, tt.year, tt.month, tt.paf)
			tt.validate(t, metrics, err)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Leitura recalcula e é idempotente", func(t *testing.T) {
		service, metricsRepo, totaler := newTestService(t)
		stored := &domain.StoreMetrics{ID: 4, Year: 2024, Month: 3, Paf: 350}

		metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).
			DoAndReturn(func(context.Context, int, int) (*domain.StoreMetrics, error) {
				copied := *stored
				return &copied, nil
			}).Times(2)
		totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{TotalSales: 400, TotalGoal: 500}, nil).Times(2)
		metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.StoreMetrics) error {
				*stored = *m
				return nil
			}).Times(2)

		first, err := service.Get(ctx, intPtr(2024), intPtr(3))
		require.NoError(t, err)
		second, err := service.Get(ctx, intPtr(2024), intPtr(3))
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.InDelta(t, 80.0, second.PercentagePaf, 1e-9)
		assert.Equal(t, 350.0, second.Paf)
	})

	t.Run("Período sem métricas", func(t *testing.T) {
		service, metricsRepo, _ := newTestService(t)
		metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(nil, nil)

		_, err := service.Get(ctx, intPtr(2024), intPtr(3))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_Recalculate(t *testing.T) {
	ctx := context.Background()
	service, metricsRepo, totaler := newTestService(t)

	metricsRepo.EXPECT().GetByPeriod(ctx, 2024, 3).Return(&domain.StoreMetrics{Year: 2024, Month: 3, Paf: 1000, PercentagePr: 10}, nil)
	totaler.EXPECT().PeriodTotals(ctx, 2024, 3).Return(&measuring.PeriodTotals{TotalSales: 250, TotalGoal: 1000}, nil)
	metricsRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	metrics, err := service.Recalculate(ctx, intPtr(2024), intPtr(3), TriggerExplicit)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, metrics.Paf)
	assert.InDelta(t, 25.0, metrics.PercentagePr, 1e-9)
	assert.InDelta(t, 25.0, metrics.PercentagePaf, 1e-9)
}

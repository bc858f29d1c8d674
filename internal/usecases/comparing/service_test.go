package comparing

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"go.uber.org/mock/gomock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// saleStore guarda as vendas em memória para os mocks do repositório
type saleStore struct {
	sales  []*domain.Sale
	nextID int64
}

func (s *saleStore) list(_ context.Context, adviserID int64, start, end time.Time) ([]*domain.Sale, error) {
	result := make([]*domain.Sale, 0)
	for _, sale := range s.sales {
		if sale.AdviserID == adviserID && !sale.SaleDate.Before(start) && !sale.SaleDate.After(end) {
			copied := *sale
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *saleStore) create(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
	s.nextID++
	sale.ID = s.nextID
	copied := *sale
	s.sales = append(s.sales, &copied)
	return sale, nil
}

func (s *saleStore) updateAmount(_ context.Context, sale *domain.Sale) error {
	for _, stored := range s.sales {
		if stored.ID == sale.ID {
			stored.Amount = sale.Amount
		}
	}
	return nil
}

func (s *saleStore) add(adviserID int64, day time.Time, amount float64) {
	_, _ = s.create(context.Background(), &domain.Sale{AdviserID: adviserID, SaleDate: day, Amount: amount})
}

type fixture struct {
	service     *Service
	adviserRepo *mocks.MockAdviserRepository
	saleRepo    *mocks.MockSaleRepository
	store       *saleStore
}

func newFixture(t *testing.T, now time.Time) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		adviserRepo: mocks.NewMockAdviserRepository(ctrl),
		saleRepo:    mocks.NewMockSaleRepository(ctrl),
		store:       &saleStore{},
	}

	f.adviserRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.Adviser{ID: 1, Name: "Ana", Lastname: "Souza", Active: true}, nil).AnyTimes()
	f.saleRepo.EXPECT().ListByAdviserAndDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(f.store.list).AnyTimes()

	f.service = NewService(f.adviserRepo, f.saleRepo, keylock.New()).(*Service)
	f.service.now = func() time.Time { return now }

	return f
}

func TestService_CompareWeek(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		sales    func(store *saleStore)
		validate func(t *testing.T, c *domain.WeeklyComparison)
	}{
		{
			name: "Crescimento sobre a semana anterior",
			sales: func(store *saleStore) {
				store.add(1, date(2024, 3, 4), 100)
				store.add(1, date(2024, 3, 12), 150)
			},
			validate: func(t *testing.T, c *domain.WeeklyComparison) {
				assert.Equal(t, 150.0, c.CurrentWeekSales)
				assert.Equal(t, 100.0, c.PreviousWeekSales)
				assert.InDelta(t, 50.0, c.GrowthPercentage, 1e-9)
				assert.Equal(t, "2024-03-11", c.WeekStart)
				assert.Equal(t, "2024-03-17", c.WeekEnd)
				assert.Equal(t, 11, c.WeekNumber)
				assert.Equal(t, "Ana Souza", c.AdviserName)
			},
		},
		{
			name: "Semana anterior zerada com vendas na atual - 100%",
			sales: func(store *saleStore) {
				store.add(1, date(2024, 3, 17), 80)
			},
			validate: func(t *testing.T, c *domain.WeeklyComparison) {
				assert.Equal(t, 100.0, c.GrowthPercentage)
			},
		},
		{
			name:  "Ambas as semanas zeradas - 0%",
			sales: func(*saleStore) {},
			validate: func(t *testing.T, c *domain.WeeklyComparison) {
				assert.Equal(t, 0.0, c.CurrentWeekSales)
				assert.Equal(t, 0.0, c.GrowthPercentage)
			},
		},
		{
			name: "Vendas de outro assessor não entram na soma",
			sales: func(store *saleStore) {
				store.add(2, date(2024, 3, 12), 999)
				store.add(1, date(2024, 3, 12), 10)
			},
			validate: func(t *testing.T, c *domain.WeeklyComparison) {
				assert.Equal(t, 10.0, c.CurrentWeekSales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, date(2024, 3, 13))
			tt.sales(f.store)

			comparison, err := f.service.CompareWeek(ctx, 1, date(2024, 3, 13))
			require.NoError(t, err)
			tt.validate(t, comparison)
		})
	}
}

func TestService_MonthComparisons(t *testing.T) {
	ctx := context.Background()

	t.Run("Março de 2024 tem cinco semanas começando em 26/02", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.store.add(1, date(2024, 2, 20), 40)
		f.store.add(1, date(2024, 3, 1), 60)

		comparisons, err := f.service.ListMonthComparisons(ctx, 1, 2024, 3)
		require.NoError(t, err)
		require.Len(t, comparisons, 5)

		starts := make([]string, 0, len(comparisons))
		for _, c := range comparisons {
			starts = append(starts, c.WeekStart)
		}
		assert.Equal(t, []string{"2024-02-26", "2024-03-04", "2024-03-11", "2024-03-18", "2024-03-25"}, starts)

		first := comparisons[0]
		assert.Equal(t, "2024-03-03", first.WeekEnd)
		assert.Equal(t, 2, first.Month)
		assert.Equal(t, 60.0, first.CurrentWeekSales)
		assert.Equal(t, 40.0, first.PreviousWeekSales)
		assert.InDelta(t, 50.0, first.GrowthPercentage, 1e-9)
	})

	t.Run("A sequência pode ser percorrida de novo e reflete novas vendas", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))

		seq, err := f.service.MonthComparisons(ctx, 1, 2024, 3)
		require.NoError(t, err)

		for c, err := range seq {
			require.NoError(t, err)
			assert.Equal(t, 0.0, c.CurrentWeekSales)
		}

		f.store.add(1, date(2024, 3, 5), 25)

		var total float64
		for c, err := range seq {
			require.NoError(t, err)
			total += c.CurrentWeekSales
		}
		assert.Equal(t, 25.0, total)
	})

	t.Run("Interrompe a iteração quando o consumidor para", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))

		seq, err := f.service.MonthComparisons(ctx, 1, 2024, 3)
		require.NoError(t, err)

		count := 0
		for range seq {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Período inválido", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))

		_, err := f.service.MonthComparisons(ctx, 1, 1999, 3)
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
	})

	t.Run("Assessor inexistente", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.adviserRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := f.service.MonthComparisons(ctx, 42, 2024, 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_ForceWeekTotal(t *testing.T) {
	ctx := context.Background()
	window := domain.WeekOf(date(2024, 3, 13))

	t.Run("Ajusta a última venda da semana para atingir o alvo", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.store.add(1, date(2024, 3, 11), 100)
		f.store.add(1, date(2024, 3, 12), 50)
		f.saleRepo.EXPECT().UpdateAmount(gomock.Any(), gomock.Any()).DoAndReturn(f.store.updateAmount).Times(1)

		comparison, err := f.service.ForceWeekTotal(ctx, 1, window, 400, PlaceAtWeekStart)
		require.NoError(t, err)
		assert.InDelta(t, 400.0, comparison.CurrentWeekSales, 1e-9)
		assert.Equal(t, 100.0, f.store.sales[0].Amount)
		assert.Equal(t, 300.0, f.store.sales[1].Amount)
	})

	t.Run("Total já igual ao alvo - nada é gravado", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.store.add(1, date(2024, 3, 11), 399.995)

		comparison, err := f.service.ForceWeekTotal(ctx, 1, window, 400, PlaceAtWeekStart)
		require.NoError(t, err)
		assert.InDelta(t, 399.995, comparison.CurrentWeekSales, 1e-9)
	})

	t.Run("Chamadas repetidas convergem sem novas gravações", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.store.add(1, date(2024, 3, 14), 10)
		f.saleRepo.EXPECT().UpdateAmount(gomock.Any(), gomock.Any()).DoAndReturn(f.store.updateAmount).Times(1)

		for range 3 {
			comparison, err := f.service.ForceWeekTotal(ctx, 1, window, 250, PlaceAtWeekStart)
			require.NoError(t, err)
			assert.InDelta(t, 250.0, comparison.CurrentWeekSales, 1e-9)
		}
	})

	t.Run("Código repetido na venda de ajuste pede nova tentativa", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateSaleCode)

		_, err := f.service.ForceWeekTotal(ctx, 1, window, 75, PlaceAtWeekStart)
		assert.ErrorIs(t, err, domain.ErrConcurrency)
		assert.Empty(t, f.store.sales)
	})

	t.Run("Alvo menor que o total reduz a última venda", func(t *testing.T) {
		f := newFixture(t, date(2024, 3, 13))
		f.store.add(1, date(2024, 3, 11), 100)
		f.store.add(1, date(2024, 3, 12), 200)
		f.saleRepo.EXPECT().UpdateAmount(gomock.Any(), gomock.Any()).DoAndReturn(f.store.updateAmount)

		comparison, err := f.service.ForceWeekTotal(ctx, 1, window, 120, PlaceAtWeekStart)
		require.NoError(t, err)
		assert.InDelta(t, 120.0, comparison.CurrentWeekSales, 1e-9)
		assert.Equal(t, 20.0, f.store.sales[1].Amount)
	})

	tests := []struct {
		name      string
		placement Placement
		expected  time.Time
	}{
		{name: "Semana sem vendas - venda de ajuste no início", placement: PlaceAtWeekStart, expected: date(2024, 3, 11)},
		{name: "Semana sem vendas - venda de ajuste no fim", placement: PlaceAtWeekEnd, expected: date(2024, 3, 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, date(2024, 3, 13))
			f.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(f.store.create).Times(1)

			comparison, err := f.service.ForceWeekTotal(ctx, 1, window, 75, tt.placement)
			require.NoError(t, err)
			assert.Equal(t, 75.0, comparison.CurrentWeekSales)

			require.Len(t, f.store.sales, 1)
			assert.Equal(t, tt.expected, f.store.sales[0].SaleDate)
			assert.Len(t, f.store.sales[0].Code, 8)

			// Repetir o mesmo alvo não cria outra venda nem soma em dobro
			comparison, err = f.service.ForceWeekTotal(ctx, 1, window, 75, tt.placement)
			require.NoError(t, err)
			assert.Equal(t, 75.0, comparison.CurrentWeekSales)
			assert.Len(t, f.store.sales, 1)
		})
	}
}

func TestService_UpdateWeekSales(t *testing.T) {
	ctx := context.Background()
	now := date(2024, 3, 13)

	t.Run("Semana atual sem alvo apenas consulta", func(t *testing.T) {
		f := newFixture(t, now)
		f.store.add(1, date(2024, 3, 12), 30)

		comparison, err := f.service.UpdateCurrentWeekSales(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 30.0, comparison.CurrentWeekSales)
	})

	t.Run("Alvo zero apenas consulta", func(t *testing.T) {
		f := newFixture(t, now)
		zero := 0.0

		comparison, err := f.service.UpdatePreviousWeekSales(ctx, 1, &zero)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-04", comparison.WeekStart)
	})

	t.Run("Semana anterior vazia recebe venda no domingo", func(t *testing.T) {
		f := newFixture(t, now)
		f.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(f.store.create)
		target := 500.0

		comparison, err := f.service.UpdatePreviousWeekSales(ctx, 1, &target)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-04", comparison.WeekStart)
		assert.Equal(t, 500.0, comparison.CurrentWeekSales)
		assert.Equal(t, date(2024, 3, 10), f.store.sales[0].SaleDate)

		current, err := f.service.UpdateCurrentWeekSales(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 500.0, current.PreviousWeekSales)
		assert.Equal(t, -100.0, current.GrowthPercentage)
	})

	t.Run("Semana atual vazia recebe venda na segunda", func(t *testing.T) {
		f := newFixture(t, now)
		f.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(f.store.create)
		target := 200.0

		_, err := f.service.UpdateCurrentWeekSales(ctx, 1, &target)
		require.NoError(t, err)
		assert.Equal(t, date(2024, 3, 11), f.store.sales[0].SaleDate)
	})
}

func TestService_GenerateWeeklyComparisons(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, date(2024, 3, 13))
	f.adviserRepo.EXPECT().ListActive(ctx).Return([]*domain.Adviser{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bia"}}, nil)
	f.store.add(2, date(2024, 3, 11), 70)

	comparisons, err := f.service.GenerateWeeklyComparisons(ctx)
	require.NoError(t, err)
	require.Len(t, comparisons, 2)
	assert.Equal(t, 0.0, comparisons[0].CurrentWeekSales)
	assert.Equal(t, 70.0, comparisons[1].CurrentWeekSales)
	assert.False(t, math.IsNaN(comparisons[1].GrowthPercentage))
}

package selling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	sellingmocks "github.com/vfg2006/kpis-manager-api/internal/usecases/selling/mocks"
	"go.uber.org/mock/gomock"
)

type txMarker struct{}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fakeLedger guarda as vendas gravadas na transação e só as confirma no commit
type fakeLedger struct {
	committed []*domain.Sale
	pending   []*domain.Sale
}

func (l *fakeLedger) total() float64 {
	return domain.SumAmounts(l.committed)
}

type fixture struct {
	adviserRepo *mocks.MockAdviserRepository
	saleRepo    *mocks.MockSaleRepository
	transactor  *mocks.MockTransactor
	recorder    *sellingmocks.MockSaleRecorder
	ledger      *fakeLedger
	txCtx       context.Context
}

func newFixture(t *testing.T, ctx context.Context) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		adviserRepo: mocks.NewMockAdviserRepository(ctrl),
		saleRepo:    mocks.NewMockSaleRepository(ctrl),
		transactor:  mocks.NewMockTransactor(ctrl),
		recorder:    sellingmocks.NewMockSaleRecorder(ctrl),
		ledger:      &fakeLedger{},
		txCtx:       context.WithValue(ctx, txMarker{}, true),
	}
}

func (f *fixture) service(today time.Time) *Service {
	service := NewService(f.adviserRepo, f.saleRepo, f.recorder, f.transactor).(*Service)
	service.now = func() time.Time { return today }
	return service
}

// expectTransaction executa fn com o contexto da transação; em erro as vendas pendentes são descartadas
func (f *fixture) expectTransaction(ctx context.Context) {
	f.transactor.EXPECT().InTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(context.Context) error) error {
			err := fn(f.txCtx)
			if err == nil {
				f.ledger.committed = append(f.ledger.committed, f.ledger.pending...)
			}
			f.ledger.pending = nil
			return err
		})
}

// expectCreate grava a venda como pendente, somente dentro da transação
func (f *fixture) expectCreate(t *testing.T, check func(s *domain.Sale)) {
	f.saleRepo.EXPECT().Create(f.txCtx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, true, ctx.Value(txMarker{}))
			if check != nil {
				check(s)
			}
			f.ledger.pending = append(f.ledger.pending, s)
			return s, nil
		})
}

func TestService_RecordSale(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      domain.SaleRequest
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, week *domain.WeekSale, err error)
	}{
		{
			name: "Venda com data - retorna o total da semana ISO",
			req:  domain.SaleRequest{AdviserID: 1, Amount: 200, SaleDate: "2024-03-06"},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
				f.expectTransaction(ctx)
				f.expectCreate(t, func(s *domain.Sale) {
					assert.Len(t, s.Code, 8)
					assert.Equal(t, date(2024, 3, 6), s.SaleDate)
				})
				f.saleRepo.EXPECT().ListByAdviserAndDateRange(f.txCtx, int64(1), date(2024, 3, 4), date(2024, 3, 10)).
					Return([]*domain.Sale{{Amount: 100}, {Amount: 200}}, nil)
				f.recorder.EXPECT().RecordSale(f.txCtx, int64(1), date(2024, 3, 6), 200.0).Return(&domain.MonthlySummary{}, nil)
			},
			validate: func(t *testing.T, f *fixture, week *domain.WeekSale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 10, week.Week)
				assert.Equal(t, 2024, week.Year)
				assert.Equal(t, 300.0, week.Total)
				assert.Len(t, f.ledger.committed, 1)
			},
		},
		{
			name: "Venda sem data - usa o dia atual",
			req:  domain.SaleRequest{AdviserID: 1, Amount: 50},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
				f.expectTransaction(ctx)
				f.expectCreate(t, nil)
				f.saleRepo.EXPECT().ListByAdviserAndDateRange(f.txCtx, int64(1), date(2024, 3, 11), date(2024, 3, 17)).
					Return([]*domain.Sale{{Amount: 50}}, nil)
				f.recorder.EXPECT().RecordSale(f.txCtx, int64(1), date(2024, 3, 13), 50.0).Return(&domain.MonthlySummary{}, nil)
			},
			validate: func(t *testing.T, f *fixture, week *domain.WeekSale, err error) {
				require.NoError(t, err)
				assert.Equal(t, 11, week.Week)
				assert.Equal(t, 50.0, week.Total)
			},
		},
		{
			name:  "Data inválida",
			req:   domain.SaleRequest{AdviserID: 1, Amount: 50, SaleDate: "06/03/2024"},
			setup: func(*fixture) {},
			validate: func(t *testing.T, _ *fixture, week *domain.WeekSale, err error) {
				assert.ErrorIs(t, err, domain.ErrBusinessRule)
				assert.Nil(t, week)
			},
		},
		{
			name: "Assessor inexistente",
			req:  domain.SaleRequest{AdviserID: 99, Amount: 50},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)
			},
			validate: func(t *testing.T, _ *fixture, _ *domain.WeekSale, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name: "Código de venda repetido pede nova tentativa",
			req:  domain.SaleRequest{AdviserID: 1, Amount: 50},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
				f.expectTransaction(ctx)
				f.saleRepo.EXPECT().Create(f.txCtx, gomock.Any()).Return(nil, repository.ErrDuplicateSaleCode)
			},
			validate: func(t *testing.T, f *fixture, _ *domain.WeekSale, err error) {
				assert.ErrorIs(t, err, domain.ErrConcurrency)
				assert.Empty(t, f.ledger.committed)
			},
		},
		{
			name: "Conflito no resumo mensal desfaz a venda",
			req:  domain.SaleRequest{AdviserID: 1, Amount: 50},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
				f.expectTransaction(ctx)
				f.expectCreate(t, nil)
				f.saleRepo.EXPECT().ListByAdviserAndDateRange(f.txCtx, int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.recorder.EXPECT().RecordSale(f.txCtx, int64(1), gomock.Any(), 50.0).Return(nil, domain.NewConcurrencyError("conflito"))
			},
			validate: func(t *testing.T, f *fixture, week *domain.WeekSale, err error) {
				assert.ErrorIs(t, err, domain.ErrConcurrency)
				assert.Nil(t, week)
				assert.Empty(t, f.ledger.committed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ctx)
			tt.setup(f)

			week, err := f.service(today).RecordSale(ctx, tt.req)
			tt.validate(t, f, week, err)
		})
	}
}

func TestService_RecordSale_RetryAfterSummaryFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, ctx)
	service := f.service(time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC))

	var summaryTotal float64
	f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil).Times(2)
	f.expectTransaction(ctx)
	f.expectTransaction(ctx)
	f.expectCreate(t, nil)
	f.expectCreate(t, nil)
	f.saleRepo.EXPECT().ListByAdviserAndDateRange(f.txCtx, int64(1), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		f.recorder.EXPECT().RecordSale(f.txCtx, int64(1), gomock.Any(), 50.0).Return(nil, domain.NewConcurrencyError("conflito")),
		f.recorder.EXPECT().RecordSale(f.txCtx, int64(1), gomock.Any(), 50.0).
			DoAndReturn(func(_ context.Context, _ int64, _ time.Time, amount float64) (*domain.MonthlySummary, error) {
				summaryTotal += amount
				return &domain.MonthlySummary{TotalSales: summaryTotal}, nil
			}),
	)

	req := domain.SaleRequest{AdviserID: 1, Amount: 50}
	_, err := service.RecordSale(ctx, req)
	require.ErrorIs(t, err, domain.ErrConcurrency)

	_, err = service.RecordSale(ctx, req)
	require.NoError(t, err)

	// A nova tentativa do cliente não duplica a venda no livro
	assert.Len(t, f.ledger.committed, 1)
	assert.Equal(t, summaryTotal, f.ledger.total())
}

func TestService_WeeklyTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, ctx)

	// Domingo 10/03 pertence à semana de segunda 04/03
	f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
	f.saleRepo.EXPECT().ListByAdviserAndDateRange(ctx, int64(1), date(2024, 3, 4), date(2024, 3, 10)).
		Return([]*domain.Sale{{Amount: 10.5}, {Amount: 20.25}}, nil)

	total, err := f.service(time.Now()).WeeklyTotal(ctx, 1, date(2024, 3, 10))
	require.NoError(t, err)
	assert.InDelta(t, 30.75, total, 1e-9)
}

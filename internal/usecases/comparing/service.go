package comparing

import (
	"context"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
	"github.com/vfg2006/kpis-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Tolerância para considerar o total da semana já igual ao alvo
const adjustmentTolerance = 0.01

// Placement define em qual extremidade da semana a venda de ajuste é criada
type Placement int

const (
	PlaceAtWeekStart Placement = iota
	PlaceAtWeekEnd
)

func (p Placement) String() string {
	if p == PlaceAtWeekEnd {
		return "week_end"
	}
	return "week_start"
}

type Comparer interface {
	CompareWeek(ctx context.Context, adviserID int64, weekStart time.Time) (*domain.WeeklyComparison, error)
	MonthComparisons(ctx context.Context, adviserID int64, year, month int) (iter.Seq2[*domain.WeeklyComparison, error], error)
	ListMonthComparisons(ctx context.Context, adviserID int64, year, month int) ([]*domain.WeeklyComparison, error)
	ForceWeekTotal(ctx context.Context, adviserID int64, window domain.WeekWindow, target float64, placement Placement) (*domain.WeeklyComparison, error)
	UpdateCurrentWeekSales(ctx context.Context, adviserID int64, target *float64) (*domain.WeeklyComparison, error)
	UpdatePreviousWeekSales(ctx context.Context, adviserID int64, target *float64) (*domain.WeeklyComparison, error)
	GenerateWeeklyComparisons(ctx context.Context) ([]*domain.WeeklyComparison, error)
	GenerateAdviserWeeklyComparison(ctx context.Context, adviserID int64) (*domain.WeeklyComparison, error)
}

type Service struct {
	adviserRepo repository.AdviserRepository
	saleRepo    repository.SaleRepository
	locks       *keylock.Locker
	now         func() time.Time
}

func NewService(
	adviserRepo repository.AdviserRepository,
	saleRepo repository.SaleRepository,
	locks *keylock.Locker,
) Comparer {
	return &Service{
		adviserRepo: adviserRepo,
		saleRepo:    saleRepo,
		locks:       locks,
		now:         time.Now,
	}
}

// CompareWeek compara a semana que contém weekStart com a semana anterior
func (s *Service) CompareWeek(ctx context.Context, adviserID int64, weekStart time.Time) (*domain.WeeklyComparison, error) {
	adviser, err := s.getAdviser(ctx, adviserID)
	if err != nil {
		return nil, err
	}
	return s.compare(ctx, adviser, domain.WeekOf(weekStart))
}

// MonthComparisons retorna a sequência das semanas que tocam o mês.
// Cada iteração relê as vendas; a sequência pode ser percorrida mais de uma vez.
func (s *Service) MonthComparisons(ctx context.Context, adviserID int64, year, month int) (iter.Seq2[*domain.WeeklyComparison, error], error) {
	if err := domain.ValidatePeriod(&year, &month); err != nil {
		return nil, err
	}

	adviser, err := s.getAdviser(ctx, adviserID)
	if err != nil {
		return nil, err
	}

	firstDay := domain.FirstDayOfMonth(year, month)
	lastDay := domain.LastDayOfMonth(year, month)

	return func(yield func(*domain.WeeklyComparison, error) bool) {
		for window := domain.WeekOf(firstDay); !window.Start.After(lastDay); window = window.Next() {
			if window.End.Before(firstDay) {
				continue
			}

			comparison, err := s.compare(ctx, adviser, window)
			if !yield(comparison, err) || err != nil {
				return
			}
		}
	}, nil
}

func (s *Service) ListMonthComparisons(ctx context.Context, adviserID int64, year, month int) ([]*domain.WeeklyComparison, error) {
	seq, err := s.MonthComparisons(ctx, adviserID, year, month)
	if err != nil {
		return nil, err
	}

	comparisons := make([]*domain.WeeklyComparison, 0, 6)
	for comparison, err := range seq {
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}

// ForceWeekTotal ajusta as vendas da semana para que o total fique igual a target.
// Com vendas na semana, a diferença é somada à última venda; sem vendas, uma venda
// de ajuste é criada na extremidade indicada por placement.
func (s *Service) ForceWeekTotal(
	ctx context.Context,
	adviserID int64,
	window domain.WeekWindow,
	target float64,
	placement Placement,
) (*domain.WeeklyComparison, error) {
	adviser, err := s.getAdviser(ctx, adviserID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(fmt.Sprintf("week:%d:%s", adviserID, window.Start.Format(time.DateOnly)))
	defer unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id": adviserID,
		"week_start": window.Start.Format(time.DateOnly),
		"target":     target,
	})

	sales, err := s.saleRepo.ListByAdviserAndDateRange(ctx, adviserID, window.Start, window.End)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas da semana")
	}

	diff := target - domain.SumAmounts(sales)

	switch {
	case math.Abs(diff) <= adjustmentTolerance:
		logger.Debug("weekly-comparisons: total da semana já corresponde ao alvo")
		observability.RecordWeekAdjustment(placement.String(), "noop")

	case len(sales) > 0:
		last := sales[len(sales)-1]
		last.Amount += diff
		if err := s.saleRepo.UpdateAmount(ctx, last); err != nil {
			return nil, errors.Wrap(err, "erro ao ajustar venda")
		}
		logger.Infof("weekly-comparisons: venda %d ajustada em %.2f", last.ID, diff)
		observability.RecordWeekAdjustment(placement.String(), "adjusted")

	default:
		saleDate := window.Start
		if placement == PlaceAtWeekEnd {
			saleDate = window.End
		}

		code, err := utils.GenerateSaleCode()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar código da venda")
		}

		_, err = s.saleRepo.Create(ctx, &domain.Sale{
			AdviserID: adviserID,
			Code:      code,
			Amount:    target,
			SaleDate:  saleDate,
		})
		if errors.Is(err, repository.ErrDuplicateSaleCode) {
			return nil, domain.NewConcurrencyError("código da venda já utilizado, tente novamente")
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar venda de ajuste")
		}
		logger.Info("weekly-comparisons: venda de ajuste criada")
		observability.RecordWeekAdjustment(placement.String(), "created")
	}

	return s.compare(ctx, adviser, window)
}

// UpdateCurrentWeekSales ajusta a semana atual quando target é positivo; caso contrário apenas consulta
func (s *Service) UpdateCurrentWeekSales(ctx context.Context, adviserID int64, target *float64) (*domain.WeeklyComparison, error) {
	return s.updateWeek(ctx, adviserID, domain.WeekOf(s.now()), target, PlaceAtWeekStart)
}

// UpdatePreviousWeekSales ajusta a semana anterior quando target é positivo; caso contrário apenas consulta
func (s *Service) UpdatePreviousWeekSales(ctx context.Context, adviserID int64, target *float64) (*domain.WeeklyComparison, error) {
	return s.updateWeek(ctx, adviserID, domain.WeekOf(s.now()).Previous(), target, PlaceAtWeekEnd)
}

func (s *Service) updateWeek(
	ctx context.Context,
	adviserID int64,
	window domain.WeekWindow,
	target *float64,
	placement Placement,
) (*domain.WeeklyComparison, error) {
	if target != nil && *target > 0 {
		return s.ForceWeekTotal(ctx, adviserID, window, *target, placement)
	}
	return s.CompareWeek(ctx, adviserID, window.Start)
}

// GenerateWeeklyComparisons calcula a comparação da semana atual para todos os assessores ativos
func (s *Service) GenerateWeeklyComparisons(ctx context.Context) ([]*domain.WeeklyComparison, error) {
	advisers, err := s.adviserRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar assessores ativos")
	}

	window := domain.WeekOf(s.now())
	comparisons := make([]*domain.WeeklyComparison, 0, len(advisers))
	for _, adviser := range advisers {
		comparison, err := s.compare(ctx, adviser, window)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}

func (s *Service) GenerateAdviserWeeklyComparison(ctx context.Context, adviserID int64) (*domain.WeeklyComparison, error) {
	return s.CompareWeek(ctx, adviserID, s.now())
}

func (s *Service) compare(ctx context.Context, adviser *domain.Adviser, window domain.WeekWindow) (*domain.WeeklyComparison, error) {
	current, err := s.windowTotal(ctx, adviser.ID, window)
	if err != nil {
		return nil, err
	}

	previous, err := s.windowTotal(ctx, adviser.ID, window.Previous())
	if err != nil {
		return nil, err
	}

	return &domain.WeeklyComparison{
		AdviserID:         adviser.ID,
		AdviserName:       adviser.FullName(),
		WeekNumber:        window.ISOWeek(),
		Year:              window.Start.Year(),
		Month:             int(window.Start.Month()),
		WeekStart:         window.Start.Format(time.DateOnly),
		WeekEnd:           window.End.Format(time.DateOnly),
		CurrentWeekSales:  current,
		PreviousWeekSales: previous,
		GrowthPercentage:  domain.GrowthPercent(current, previous),
	}, nil
}

func (s *Service) windowTotal(ctx context.Context, adviserID int64, window domain.WeekWindow) (float64, error) {
	sales, err := s.saleRepo.ListByAdviserAndDateRange(ctx, adviserID, window.Start, window.End)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar vendas da semana")
	}
	return domain.SumAmounts(sales), nil
}

func (s *Service) getAdviser(ctx context.Context, adviserID int64) (*domain.Adviser, error) {
	adviser, err := s.adviserRepo.GetByID(ctx, adviserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assessor")
	}
	if adviser == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", adviserID))
	}
	return adviser, nil
}

package budgeting

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/measuring"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Origens de recálculo registradas nas métricas
const (
	TriggerWrite     = "write"
	TriggerRead      = "read"
	TriggerExplicit  = "explicit"
	TriggerScheduled = "scheduled"
)

type Budgeter interface {
	Upsert(ctx context.Context, year, month *int, paf float64) (*domain.StoreMetrics, error)
	Get(ctx context.Context, year, month *int) (*domain.StoreMetrics, error)
	Recalculate(ctx context.Context, year, month *int, trigger string) (*domain.StoreMetrics, error)
}

type Service struct {
	metricsRepo repository.StoreMetricsRepository
	totaler     measuring.PeriodTotaler
	locks       *keylock.Locker
}

func NewService(
	metricsRepo repository.StoreMetricsRepository,
	totaler measuring.PeriodTotaler,
	locks *keylock.Locker,
) Budgeter {
	return &Service{
		metricsRepo: metricsRepo,
		totaler:     totaler,
		locks:       locks,
	}
}

func storeKey(year, month int) string {
	return fmt.Sprintf("store:%d:%d", year, month)
}

// Upsert grava o PAF do período e recalcula os percentuais
func (s *Service) Upsert(ctx context.Context, year, month *int, paf float64) (*domain.StoreMetrics, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(storeKey(*year, *month))
	defer unlock()

	metrics, err := s.metricsRepo.GetByPeriod(ctx, *year, *month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas da loja")
	}
	if metrics == nil {
		metrics = &domain.StoreMetrics{Year: *year, Month: *month}
	}

	metrics.Paf = paf
	if err := s.recalculateAndSave(ctx, metrics, TriggerWrite); err != nil {
		return nil, err
	}

	return metrics, nil
}

// Get retorna as métricas do período. A leitura recalcula e grava os percentuais.
func (s *Service) Get(ctx context.Context, year, month *int) (*domain.StoreMetrics, error) {
	return s.Recalculate(ctx, year, month, TriggerRead)
}

// Recalculate recalcula os percentuais sem alterar o PAF
func (s *Service) Recalculate(ctx context.Context, year, month *int, trigger string) (*domain.StoreMetrics, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(storeKey(*year, *month))
	defer unlock()

	metrics, err := s.metricsRepo.GetByPeriod(ctx, *year, *month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas da loja")
	}
	if metrics == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("métricas da loja não encontradas para %02d/%d", *month, *year))
	}

	if err := s.recalculateAndSave(ctx, metrics, trigger); err != nil {
		return nil, err
	}

	return metrics, nil
}

func (s *Service) recalculateAndSave(ctx context.Context, metrics *domain.StoreMetrics, trigger string) error {
	totals, err := s.totaler.PeriodTotals(ctx, metrics.Year, metrics.Month)
	if err != nil {
		return err
	}

	metrics.Recalculate(totals.TotalSales, totals.TotalGoal)

	if err := s.metricsRepo.Upsert(ctx, metrics); err != nil {
		return errors.Wrap(err, "erro ao gravar métricas da loja")
	}

	observability.RecordStoreMetricsRecalculation(trigger)

	log.ForContext(ctx).WithFields(log.Fields{
		"year":           metrics.Year,
		"month":          metrics.Month,
		"percentage_paf": metrics.PercentagePaf,
		"percentage_pr":  metrics.PercentagePr,
		"trigger":        trigger,
	}).Debug("store-metrics: percentuais recalculados")

	return nil
}

package measuring

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// PeriodTotals reúne os totais do período. As vendas vêm dos resumos mensais e
// as metas vêm diretamente do cadastro de metas dos assessores ativos.
type PeriodTotals struct {
	TotalSales     float64
	TotalGoal      float64
	ActiveAdvisers []*domain.Adviser
	Summaries      []*domain.MonthlySummary
}

// PeriodTotaler calcula os totais de vendas e metas de um período
type PeriodTotaler interface {
	PeriodTotals(ctx context.Context, year, month int) (*PeriodTotals, error)
}

type Measurer interface {
	PeriodTotaler
	DashboardMetrics(ctx context.Context, year, month int) (*domain.DashboardMetrics, error)
	AdviserMetrics(ctx context.Context, adviserID int64, year, month int) (*domain.AdviserMetrics, error)
}

type Service struct {
	adviserRepo repository.AdviserRepository
	goalRepo    repository.GoalRepository
	summaryRepo repository.MonthlySummaryRepository
}

func NewService(
	adviserRepo repository.AdviserRepository,
	goalRepo repository.GoalRepository,
	summaryRepo repository.MonthlySummaryRepository,
) Measurer {
	return &Service{
		adviserRepo: adviserRepo,
		goalRepo:    goalRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *Service) PeriodTotals(ctx context.Context, year, month int) (*PeriodTotals, error) {
	advisers, err := s.adviserRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar assessores ativos")
	}

	summaries, err := s.summaryRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar resumos mensais")
	}

	totals := &PeriodTotals{
		ActiveAdvisers: advisers,
		Summaries:      summaries,
	}

	for _, summary := range summaries {
		totals.TotalSales += summary.TotalSales
	}

	for _, adviser := range advisers {
		goal, err := s.goalRepo.GetByAdviserAndPeriod(ctx, adviser.ID, year, month)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar meta")
		}
		if goal != nil {
			totals.TotalGoal += goal.GoalValue
		}
	}

	return totals, nil
}

func (s *Service) DashboardMetrics(ctx context.Context, year, month int) (*domain.DashboardMetrics, error) {
	if err := domain.ValidatePeriod(&year, &month); err != nil {
		return nil, err
	}

	totals, err := s.PeriodTotals(ctx, year, month)
	if err != nil {
		return nil, err
	}

	activeCount := len(totals.ActiveAdvisers)
	if activeCount == 0 {
		return &domain.DashboardMetrics{}, nil
	}

	candidates, err := s.candidates(ctx, totals)
	if err != nil {
		return nil, err
	}

	metrics := &domain.DashboardMetrics{
		TotalSales:        totals.TotalSales,
		TotalGoal:         totals.TotalGoal,
		ActiveAdvisers:    activeCount,
		GoalAchievement:   domain.Achievement(totals.TotalSales, totals.TotalGoal),
		AverageSales:      totals.TotalSales / float64(activeCount),
		BestByAchievement: domain.BestBy(candidates, domain.CompareByAchievement),
		BestByUPT:         domain.BestBy(candidates, domain.CompareByUPT),
	}

	if !metrics.GoalAchievement.Defined() {
		warnUndefinedAchievement(ctx, log.Fields{"year": year, "month": month, "total_sales": totals.TotalSales})
	}

	return metrics, nil
}

func (s *Service) AdviserMetrics(ctx context.Context, adviserID int64, year, month int) (*domain.AdviserMetrics, error) {
	if err := domain.ValidatePeriod(&year, &month); err != nil {
		return nil, err
	}

	summary, err := s.summaryRepo.GetByAdviserAndPeriod(ctx, adviserID, year, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar resumo mensal")
	}
	if summary == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("resumo mensal não encontrado para o assessor %d em %02d/%d", adviserID, month, year))
	}

	adviser, err := s.adviserRepo.GetByID(ctx, adviserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assessor")
	}
	if adviser == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", adviserID))
	}

	metrics := &domain.AdviserMetrics{
		AdviserID:       adviser.ID,
		Name:            adviser.FullName(),
		TotalSales:      summary.TotalSales,
		TotalGoal:       summary.Goal,
		GoalAchievement: domain.Achievement(summary.TotalSales, summary.Goal),
	}

	if !metrics.GoalAchievement.Defined() {
		warnUndefinedAchievement(ctx, log.Fields{"adviser_id": adviserID, "year": year, "month": month})
	}

	return metrics, nil
}

// candidates monta um candidato por resumo do período; assessores sem resumo ficam de fora
func (s *Service) candidates(ctx context.Context, totals *PeriodTotals) ([]*domain.AdviserPerformance, error) {
	advisers := make(map[int64]*domain.Adviser, len(totals.ActiveAdvisers))
	for _, adviser := range totals.ActiveAdvisers {
		advisers[adviser.ID] = adviser
	}

	candidates := make([]*domain.AdviserPerformance, 0, len(totals.Summaries))
	for _, summary := range totals.Summaries {
		adviser, ok := advisers[summary.AdviserID]
		if !ok {
			var err error
			adviser, err = s.adviserRepo.GetByID(ctx, summary.AdviserID)
			if err != nil {
				return nil, errors.Wrap(err, "erro ao buscar assessor")
			}
			if adviser == nil {
				continue
			}
		}

		candidates = append(candidates, &domain.AdviserPerformance{
			AdviserID:   adviser.ID,
			Name:        adviser.FullName(),
			TotalSales:  summary.TotalSales,
			Goal:        summary.Goal,
			Achievement: domain.Achievement(summary.TotalSales, summary.Goal),
			UPT:         adviser.UPTOrZero(),
		})
	}

	return candidates, nil
}

func warnUndefinedAchievement(ctx context.Context, fields log.Fields) {
	observability.RecordUndefinedAchievement()
	log.ForContext(ctx).WithFields(fields).Warn("metrics: venda positiva com meta zero, atingimento indefinido")
}

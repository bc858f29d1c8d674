package summarizing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/config"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Summarizer mantém o resumo mensal (total vendido + espelho da meta) de cada assessor
type Summarizer interface {
	RecordSale(ctx context.Context, adviserID int64, date time.Time, amount float64) (*domain.MonthlySummary, error)
	SyncGoal(ctx context.Context, adviserID int64, goalValue float64, year, month int) error
	OverrideTotal(ctx context.Context, adviserID int64, year, month int, newTotal float64) (*domain.MonthlySummary, error)
}

type Service struct {
	summaryRepo repository.MonthlySummaryRepository
	goalRepo    repository.GoalRepository
	locks       *keylock.Locker
	maxAttempts int
}

func NewService(
	summaryRepo repository.MonthlySummaryRepository,
	goalRepo repository.GoalRepository,
	locks *keylock.Locker,
	cfg *config.Config,
) Summarizer {
	return &Service{
		summaryRepo: summaryRepo,
		goalRepo:    goalRepo,
		locks:       locks,
		maxAttempts: cfg.Summary.MaxWriteAttempts,
	}
}

func summaryKey(adviserID int64, year, month int) string {
	return fmt.Sprintf("summary:%d:%d:%d", adviserID, year, month)
}

// RecordSale soma o valor ao resumo do período da venda, criando o resumo se necessário
func (s *Service) RecordSale(ctx context.Context, adviserID int64, date time.Time, amount float64) (*domain.MonthlySummary, error) {
	year, month := date.Year(), int(date.Month())

	unlock := s.locks.Lock(summaryKey(adviserID, year, month))
	defer unlock()

	var summary *domain.MonthlySummary
	err := s.withRetry(ctx, func() error {
		lookup, err := s.find(ctx, adviserID, year, month)
		if err != nil {
			return err
		}

		if !lookup.Found {
			summary, err = s.newSummary(ctx, adviserID, year, month)
			if err != nil {
				return err
			}
			summary.TotalSales += amount
			return s.summaryRepo.Create(ctx, summary)
		}

		summary = lookup.Summary
		if summary.Goal == 0 {
			if err := s.copyGoal(ctx, summary); err != nil {
				return err
			}
		}

		summary.TotalSales += amount
		return s.summaryRepo.Save(ctx, summary)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id":  adviserID,
		"year":        year,
		"month":       month,
		"total_sales": summary.TotalSales,
	}).Debug("summarizing: venda somada ao resumo mensal")

	return summary, nil
}

// SyncGoal atualiza o espelho da meta. Sem resumo no período não faz nada:
// o resumo só é criado pela primeira venda.
func (s *Service) SyncGoal(ctx context.Context, adviserID int64, goalValue float64, year, month int) error {
	unlock := s.locks.Lock(summaryKey(adviserID, year, month))
	defer unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id": adviserID,
		"year":       year,
		"month":      month,
	})

	return s.withRetry(ctx, func() error {
		lookup, err := s.find(ctx, adviserID, year, month)
		if err != nil {
			return err
		}

		if !lookup.Found {
			logger.Info("summarizing: nenhum resumo mensal para sincronizar a meta")
			return nil
		}

		summary := lookup.Summary
		if !summary.NeedsGoalSync(goalValue) {
			return nil
		}

		summary.ApplyGoal(&domain.Goal{GoalValue: goalValue})
		return s.summaryRepo.Save(ctx, summary)
	})
}

// OverrideTotal substitui o total vendido sem passar pelas vendas.
// A partir daí o resumo pode divergir da soma das vendas.
func (s *Service) OverrideTotal(ctx context.Context, adviserID int64, year, month int, newTotal float64) (*domain.MonthlySummary, error) {
	if err := domain.ValidatePeriod(&year, &month); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(summaryKey(adviserID, year, month))
	defer unlock()

	var summary *domain.MonthlySummary
	err := s.withRetry(ctx, func() error {
		lookup, err := s.find(ctx, adviserID, year, month)
		if err != nil {
			return err
		}

		if !lookup.Found {
			return domain.NewNotFoundError(fmt.Sprintf("resumo mensal não encontrado para o assessor %d em %02d/%d", adviserID, month, year))
		}

		summary = lookup.Summary
		summary.TotalSales = newTotal
		summary.TotalOverridden = true
		return s.summaryRepo.Save(ctx, summary)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id":  adviserID,
		"total_sales": newTotal,
	}).Warn("summarizing: total do resumo mensal sobrescrito manualmente")

	return summary, nil
}

func (s *Service) find(ctx context.Context, adviserID int64, year, month int) (domain.SummaryLookup, error) {
	summary, err := s.summaryRepo.GetByAdviserAndPeriod(ctx, adviserID, year, month)
	if err != nil {
		return domain.SummaryLookup{}, errors.Wrap(err, "erro ao buscar resumo mensal")
	}
	return domain.NewSummaryLookup(summary), nil
}

// newSummary monta o resumo zerado do período com a meta copiada, sem persistir
func (s *Service) newSummary(ctx context.Context, adviserID int64, year, month int) (*domain.MonthlySummary, error) {
	summary := domain.NewMonthlySummary(adviserID, year, month)
	if err := s.copyGoal(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Service) copyGoal(ctx context.Context, summary *domain.MonthlySummary) error {
	goal, err := s.goalRepo.GetByAdviserAndPeriod(ctx, summary.AdviserID, summary.Year, summary.Month)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar meta")
	}

	if goal == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"adviser_id": summary.AdviserID,
			"year":       summary.Year,
			"month":      summary.Month,
		}).Warn("summarizing: meta não encontrada para o período, resumo fica com meta zero")
	}

	summary.ApplyGoal(goal)
	return nil
}

// withRetry repete fn enquanto a gravação falhar por conflito de versão
func (s *Service) withRetry(ctx context.Context, fn func() error) error {
	attempts := s.maxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := fn()
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		observability.RecordSummaryConflict()
		if attempt >= attempts {
			return domain.NewConcurrencyError("o resumo mensal foi alterado por outra operação, tente novamente")
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		log.ForContext(ctx).Warnf("summarizing: conflito de versão no resumo mensal, tentativa %d de %d", attempt, attempts)
	}
}

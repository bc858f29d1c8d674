package goalsetting

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// GoalSyncer propaga a meta para o resumo mensal
type GoalSyncer interface {
	SyncGoal(ctx context.Context, adviserID int64, goalValue float64, year, month int) error
}

type GoalSetter interface {
	UpdateGoal(ctx context.Context, adviserID int64, req domain.GoalRequest) (*domain.Goal, error)
	UpdateGoalsForAllActive(ctx context.Context, req domain.GoalRequest) ([]*domain.Goal, error)
}

type Service struct {
	adviserRepo repository.AdviserRepository
	goalRepo    repository.GoalRepository
	syncer      GoalSyncer
	transactor  repository.Transactor
}

func NewService(
	adviserRepo repository.AdviserRepository,
	goalRepo repository.GoalRepository,
	syncer GoalSyncer,
	transactor repository.Transactor,
) GoalSetter {
	return &Service{
		adviserRepo: adviserRepo,
		goalRepo:    goalRepo,
		syncer:      syncer,
		transactor:  transactor,
	}
}

// UpdateGoal grava a meta do assessor no período e sincroniza o resumo mensal
func (s *Service) UpdateGoal(ctx context.Context, adviserID int64, req domain.GoalRequest) (*domain.Goal, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	adviser, err := s.adviserRepo.GetByID(ctx, adviserID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assessor")
	}
	if adviser == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", adviserID))
	}

	var goal *domain.Goal
	err = s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		goal, err = s.setGoal(ctx, adviser.ID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// UpdateGoalsForAllActive aplica a mesma meta a todos os assessores ativos.
// Uma falha em qualquer assessor desfaz as metas e os resumos já gravados.
func (s *Service) UpdateGoalsForAllActive(ctx context.Context, req domain.GoalRequest) ([]*domain.Goal, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	advisers, err := s.adviserRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar assessores ativos")
	}

	goals := make([]*domain.Goal, 0, len(advisers))
	err = s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		for _, adviser := range advisers {
			goal, err := s.setGoal(ctx, adviser.ID, req)
			if err != nil {
				return err
			}
			goals = append(goals, goal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"advisers": len(goals),
		"year":     req.Year,
		"month":    req.Month,
	}).Info("goalsetting: meta atualizada para todos os assessores ativos")

	return goals, nil
}

// setGoal grava a meta e o espelho no resumo mensal; deve rodar dentro de uma transação
func (s *Service) setGoal(ctx context.Context, adviserID int64, req domain.GoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.Upsert(ctx, &domain.Goal{
		AdviserID: adviserID,
		Year:      req.Year,
		Month:     req.Month,
		GoalValue: *req.GoalValue,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar meta")
	}

	if err := s.syncer.SyncGoal(ctx, adviserID, goal.GoalValue, goal.Year, goal.Month); err != nil {
		return nil, err
	}

	return goal, nil
}

func validate(req domain.GoalRequest) error {
	if req.GoalValue == nil {
		return domain.NewBusinessError("o valor da meta é obrigatório")
	}
	return domain.ValidatePeriod(&req.Year, &req.Month)
}

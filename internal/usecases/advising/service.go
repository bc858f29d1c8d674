package advising

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type AdviserService interface {
	ListAdvisers(ctx context.Context) ([]*domain.Adviser, error)
	GetAdviser(ctx context.Context, id int64) (*domain.Adviser, error)
	CreateAdviser(ctx context.Context, req domain.CreateAdviserRequest) (*domain.Adviser, error)
	UpdateAdviser(ctx context.Context, req domain.UpdateAdviserRequest) (*domain.Adviser, error)
	DeleteAdviser(ctx context.Context, id int64) error
}

type Service struct {
	adviserRepo repository.AdviserRepository
	now         func() time.Time
}

func NewService(adviserRepo repository.AdviserRepository) AdviserService {
	return &Service{
		adviserRepo: adviserRepo,
		now:         time.Now,
	}
}

func (s *Service) ListAdvisers(ctx context.Context) ([]*domain.Adviser, error) {
	advisers, err := s.adviserRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar assessores")
	}
	return advisers, nil
}

func (s *Service) GetAdviser(ctx context.Context, id int64) (*domain.Adviser, error) {
	adviser, err := s.adviserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar assessor")
	}
	if adviser == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", id))
	}
	return adviser, nil
}

// CreateAdviser cadastra o assessor. Com goal_value informado, a meta do mês
// corrente é gravada na mesma transação.
func (s *Service) CreateAdviser(ctx context.Context, req domain.CreateAdviserRequest) (*domain.Adviser, error) {
	adviser := &domain.Adviser{
		Name:     req.Name,
		Lastname: req.Lastname,
		Active:   true,
		UPT:      req.UPT,
	}
	if req.Active != nil {
		adviser.Active = *req.Active
	}

	var goal *domain.Goal
	if req.GoalValue != nil && *req.GoalValue > 0 {
		now := s.now()
		goal = &domain.Goal{
			Year:      now.Year(),
			Month:     int(now.Month()),
			GoalValue: *req.GoalValue,
		}
	}

	created, err := s.adviserRepo.Create(ctx, adviser, goal)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao cadastrar assessor")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id": created.ID,
		"with_goal":  goal != nil,
	}).Info("advisers: assessor cadastrado")

	return created, nil
}

// UpdateAdviser aplica apenas os campos informados
func (s *Service) UpdateAdviser(ctx context.Context, req domain.UpdateAdviserRequest) (*domain.Adviser, error) {
	adviser, err := s.GetAdviser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		adviser.Name = *req.Name
	}
	if req.Lastname != nil {
		adviser.Lastname = *req.Lastname
	}
	if req.Active != nil {
		adviser.Active = *req.Active
	}
	if req.UPT != nil {
		adviser.UPT = req.UPT
	}

	if err := s.adviserRepo.Update(ctx, adviser); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar assessor")
	}

	return adviser, nil
}

func (s *Service) DeleteAdviser(ctx context.Context, id int64) error {
	deleted, err := s.adviserRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "erro ao remover assessor")
	}
	if !deleted {
		return domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", id))
	}

	log.ForContext(ctx).WithField("adviser_id", id).Info("advisers: assessor removido")
	return nil
}

package selling

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
	"github.com/vfg2006/kpis-manager-api/pkg/observability"
	"github.com/vfg2006/kpis-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// SaleRecorder acumula a venda no resumo mensal
type SaleRecorder interface {
	RecordSale(ctx context.Context, adviserID int64, date time.Time, amount float64) (*domain.MonthlySummary, error)
}

type Seller interface {
	RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.WeekSale, error)
	WeeklyTotal(ctx context.Context, adviserID int64, anchor time.Time) (float64, error)
}

type Service struct {
	adviserRepo repository.AdviserRepository
	saleRepo    repository.SaleRepository
	recorder    SaleRecorder
	transactor  repository.Transactor
	now         func() time.Time
}

func NewService(
	adviserRepo repository.AdviserRepository,
	saleRepo repository.SaleRepository,
	recorder SaleRecorder,
	transactor repository.Transactor,
) Seller {
	return &Service{
		adviserRepo: adviserRepo,
		saleRepo:    saleRepo,
		recorder:    recorder,
		transactor:  transactor,
		now:         time.Now,
	}
}

// RecordSale grava a venda e atualiza o resumo mensal na mesma transação e devolve o total da semana
func (s *Service) RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.WeekSale, error) {
	parsed, err := utils.ParseDateOr(req.SaleDate, s.now())
	if err != nil {
		return nil, domain.NewBusinessError("data da venda inválida, use o formato AAAA-MM-DD")
	}
	saleDate := domain.DateOnly(parsed)

	if err := s.ensureAdviser(ctx, req.AdviserID); err != nil {
		return nil, err
	}

	code, err := utils.GenerateSaleCode()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código da venda")
	}

	sale := &domain.Sale{
		AdviserID: req.AdviserID,
		Code:      code,
		Amount:    req.Amount,
		SaleDate:  saleDate,
	}
	window := domain.WeekOf(saleDate)

	// Venda e resumo mensal são gravados juntos: se o resumo falhar a venda é desfeita
	var total float64
	err = s.transactor.InTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.saleRepo.Create(ctx, sale); err != nil {
			if errors.Is(err, repository.ErrDuplicateSaleCode) {
				return domain.NewConcurrencyError("código da venda já utilizado, tente novamente")
			}
			return errors.Wrap(err, "erro ao registrar venda")
		}

		var err error
		total, err = s.windowTotal(ctx, req.AdviserID, window)
		if err != nil {
			return err
		}

		_, err = s.recorder.RecordSale(ctx, req.AdviserID, sale.SaleDate, sale.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	observability.RecordSale()

	log.ForContext(ctx).WithFields(log.Fields{
		"adviser_id": req.AdviserID,
		"sale_code":  sale.Code,
		"amount":     sale.Amount,
		"week_total": total,
	}).Info("sales: venda registrada")

	return &domain.WeekSale{
		Week:  window.ISOWeek(),
		Year:  window.Start.Year(),
		Total: total,
	}, nil
}

// WeeklyTotal soma as vendas da semana (segunda a domingo) que contém a data
func (s *Service) WeeklyTotal(ctx context.Context, adviserID int64, anchor time.Time) (float64, error) {
	if err := s.ensureAdviser(ctx, adviserID); err != nil {
		return 0, err
	}
	return s.windowTotal(ctx, adviserID, domain.WeekOf(anchor))
}

func (s *Service) windowTotal(ctx context.Context, adviserID int64, window domain.WeekWindow) (float64, error) {
	sales, err := s.saleRepo.ListByAdviserAndDateRange(ctx, adviserID, window.Start, window.End)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar vendas da semana")
	}
	return domain.SumAmounts(sales), nil
}

func (s *Service) ensureAdviser(ctx context.Context, adviserID int64) error {
	adviser, err := s.adviserRepo.GetByID(ctx, adviserID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar assessor")
	}
	if adviser == nil {
		return domain.NewNotFoundError(fmt.Sprintf("assessor %d não encontrado", adviserID))
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
)

const (
	monthlySummariesTable = "monthly_summaries"
)

// ErrVersionConflict indica que o resumo foi alterado por outra escrita desde a leitura
var ErrVersionConflict = errors.New("monthly summary version conflict")

var monthlySummaryColumns = []string{
	"id",
	"adviser_id",
	"year",
	"month",
	"total_sales",
	"goal",
	"goal_stale",
	"total_overridden",
	"version",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=monthly_summary.go -destination=mocks/monthly_summary.go -package=mocks

type MonthlySummaryRepository interface {
	GetByAdviserAndPeriod(ctx context.Context, adviserID int64, year, month int) (*domain.MonthlySummary, error)
	ListByPeriod(ctx context.Context, year, month int) ([]*domain.MonthlySummary, error)
	Create(ctx context.Context, summary *domain.MonthlySummary) error
	Save(ctx context.Context, summary *domain.MonthlySummary) error
}

type monthlySummaryRepository struct {
	conn *postgres.Connection
}

func NewMonthlySummaryRepository(conn *postgres.Connection) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) GetByAdviserAndPeriod(ctx context.Context, adviserID int64, year, month int) (*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select(monthlySummaryColumns...).
		From(monthlySummariesTable).
		Where(squirrel.Eq{"adviser_id": adviserID, "year": year, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := scanMonthlySummary(r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
	}

	return summary, nil
}

// ListByPeriod retorna os resumos do período ordenados pelo assessor
func (r *monthlySummaryRepository) ListByPeriod(ctx context.Context, year, month int) ([]*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select(monthlySummaryColumns...).
		From(monthlySummariesTable).
		Where(squirrel.Eq{"year": year, "month": month}).
		OrderBy("adviser_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.MonthlySummary, 0)
	for rows.Next() {
		summary, err := scanMonthlySummary(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

// Create insere um novo resumo. Se outro processo criou o mesmo período antes,
// retorna ErrVersionConflict para que o chamador releia o registro. O conflito não
// gera erro no banco, então a transação em curso continua válida.
func (r *monthlySummaryRepository) Create(ctx context.Context, summary *domain.MonthlySummary) error {
	query, args, err := squirrel.
		Insert(monthlySummariesTable).
		Columns("adviser_id", "year", "month", "total_sales", "goal", "goal_stale", "total_overridden").
		Values(
			summary.AdviserID,
			summary.Year,
			summary.Month,
			summary.TotalSales,
			summary.Goal,
			summary.GoalStale,
			summary.TotalOverridden,
		).
		Suffix("ON CONFLICT (adviser_id, year, month) DO NOTHING RETURNING id, version, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(
		&summary.ID,
		&summary.Version,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("erro ao inserir resumo mensal: %w", err)
	}

	return nil
}

// Save grava o resumo somente se a versão lida ainda for a atual
func (r *monthlySummaryRepository) Save(ctx context.Context, summary *domain.MonthlySummary) error {
	query, args, err := squirrel.
		Update(monthlySummariesTable).
		Set("total_sales", summary.TotalSales).
		Set("goal", summary.Goal).
		Set("goal_stale", summary.GoalStale).
		Set("total_overridden", summary.TotalOverridden).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": summary.ID, "version": summary.Version}).
		Suffix("RETURNING version, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&summary.Version, &summary.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("erro ao atualizar resumo mensal: %w", err)
	}

	return nil
}

func scanMonthlySummary(row rowScanner) (*domain.MonthlySummary, error) {
	summary := &domain.MonthlySummary{}

	err := row.Scan(
		&summary.ID,
		&summary.AdviserID,
		&summary.Year,
		&summary.Month,
		&summary.TotalSales,
		&summary.Goal,
		&summary.GoalStale,
		&summary.TotalOverridden,
		&summary.Version,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

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
	goalsTable = "goals"
)

//go:generate mockgen -source=goal.go -destination=mocks/goal.go -package=mocks

type GoalRepository interface {
	GetByAdviserAndPeriod(ctx context.Context, adviserID int64, year, month int) (*domain.Goal, error)
	Upsert(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) GetByAdviserAndPeriod(ctx context.Context, adviserID int64, year, month int) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select("id", "adviser_id", "year", "month", "goal_value", "created_at", "updated_at").
		From(goalsTable).
		Where(squirrel.Eq{"adviser_id": adviserID, "year": year, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.Goal{}
	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(
		&goal.ID,
		&goal.AdviserID,
		&goal.Year,
		&goal.Month,
		&goal.GoalValue,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

// Upsert grava a meta do período; existe no máximo uma meta por (assessor, ano, mês)
func (r *goalRepository) Upsert(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	return upsertGoal(ctx, r.conn.Queryer(ctx), goal)
}

func upsertGoal(ctx context.Context, q postgres.Queryer, goal *domain.Goal) (*domain.Goal, error) {
	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("adviser_id", "year", "month", "goal_value").
		Values(goal.AdviserID, goal.Year, goal.Month, goal.GoalValue).
		Suffix(`
			ON CONFLICT (adviser_id, year, month) DO UPDATE SET
				goal_value = EXCLUDED.goal_value,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar meta: %w", err)
	}

	return goal, nil
}

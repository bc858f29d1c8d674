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
	storeMetricsTable = "store_metrics"
)

//go:generate mockgen -source=store_metrics.go -destination=mocks/store_metrics.go -package=mocks

type StoreMetricsRepository interface {
	GetByPeriod(ctx context.Context, year, month int) (*domain.StoreMetrics, error)
	Upsert(ctx context.Context, metrics *domain.StoreMetrics) error
}

type storeMetricsRepository struct {
	conn *postgres.Connection
}

func NewStoreMetricsRepository(conn *postgres.Connection) StoreMetricsRepository {
	return &storeMetricsRepository{
		conn: conn,
	}
}

func (r *storeMetricsRepository) GetByPeriod(ctx context.Context, year, month int) (*domain.StoreMetrics, error) {
	query, args, err := squirrel.
		Select("id", "year", "month", "paf", "percentage_paf", "percentage_pr", "created_at", "updated_at").
		From(storeMetricsTable).
		Where(squirrel.Eq{"year": year, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics := &domain.StoreMetrics{}
	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(
		&metrics.ID,
		&metrics.Year,
		&metrics.Month,
		&metrics.Paf,
		&metrics.PercentagePaf,
		&metrics.PercentagePr,
		&metrics.CreatedAt,
		&metrics.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas da loja: %w", err)
	}

	return metrics, nil
}

// Upsert grava as métricas do período; (ano, mês) é único
func (r *storeMetricsRepository) Upsert(ctx context.Context, metrics *domain.StoreMetrics) error {
	query, args, err := squirrel.
		Insert(storeMetricsTable).
		Columns("year", "month", "paf", "percentage_paf", "percentage_pr").
		Values(metrics.Year, metrics.Month, metrics.Paf, metrics.PercentagePaf, metrics.PercentagePr).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				paf = EXCLUDED.paf,
				percentage_paf = EXCLUDED.percentage_paf,
				percentage_pr = EXCLUDED.percentage_pr,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&metrics.ID, &metrics.CreatedAt, &metrics.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar métricas da loja: %w", err)
	}

	return nil
}

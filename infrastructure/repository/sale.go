package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
)

const (
	salesTable = "sales"

	uniqueViolationCode = "23505"
)

// ErrDuplicateSaleCode indica que o código gerado para a venda já existe
var ErrDuplicateSaleCode = errors.New("sale code already exists")

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

type SaleRepository interface {
	ListByAdviserAndDateRange(ctx context.Context, adviserID int64, start, end time.Time) ([]*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	UpdateAmount(ctx context.Context, sale *domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListByAdviserAndDateRange retorna as vendas do intervalo fechado [start, end] ordenadas por data e id
func (r *saleRepository) ListByAdviserAndDateRange(ctx context.Context, adviserID int64, start, end time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "adviser_id", "code", "amount", "sale_date", "created_at", "updated_at").
		From(salesTable).
		Where(squirrel.Eq{"adviser_id": adviserID}).
		Where(squirrel.GtOrEq{"sale_date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": end.Format(time.DateOnly)}).
		OrderBy("sale_date ASC", "id ASC").
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.AdviserID,
			&sale.Code,
			&sale.Amount,
			&sale.SaleDate,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sale.SaleDate = domain.DateOnly(sale.SaleDate)
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("adviser_id", "code", "amount", "sale_date").
		Values(sale.AdviserID, sale.Code, sale.Amount, sale.SaleDate.Format(time.DateOnly)).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateSaleCode
		}
		return nil, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return sale, nil
}

// UpdateAmount altera apenas o valor da venda
func (r *saleRepository) UpdateAmount(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("amount", sale.Amount).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	return nil
}

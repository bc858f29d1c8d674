// Package repository contém as implementações dos repositórios para acesso aos dados
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
	advisersTable = "advisers"
)

var adviserColumns = []string{
	"id",
	"name",
	"lastname",
	"active",
	"upt",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=adviser.go -destination=mocks/adviser.go -package=mocks

type AdviserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Adviser, error)
	List(ctx context.Context) ([]*domain.Adviser, error)
	ListActive(ctx context.Context) ([]*domain.Adviser, error)
	Create(ctx context.Context, adviser *domain.Adviser, goal *domain.Goal) (*domain.Adviser, error)
	Update(ctx context.Context, adviser *domain.Adviser) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type adviserRepository struct {
	conn *postgres.Connection
}

func NewAdviserRepository(conn *postgres.Connection) AdviserRepository {
	return &adviserRepository{
		conn: conn,
	}
}

func (r *adviserRepository) GetByID(ctx context.Context, id int64) (*domain.Adviser, error) {
	query, args, err := squirrel.
		Select(adviserColumns...).
		From(advisersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adviser, err := scanAdviser(r.conn.Queryer(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear assessor: %w", err)
	}

	return adviser, nil
}

func (r *adviserRepository) List(ctx context.Context) ([]*domain.Adviser, error) {
	return r.list(ctx, nil)
}

func (r *adviserRepository) ListActive(ctx context.Context) ([]*domain.Adviser, error) {
	return r.list(ctx, squirrel.Eq{"active": true})
}

func (r *adviserRepository) list(ctx context.Context, filter squirrel.Sqlizer) ([]*domain.Adviser, error) {
	builder := squirrel.
		Select(adviserColumns...).
		From(advisersTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Queryer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	advisers := make([]*domain.Adviser, 0)
	for rows.Next() {
		adviser, err := scanAdviser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear assessor: %w", err)
		}
		advisers = append(advisers, adviser)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return advisers, nil
}

// Create insere o assessor e, quando informada, a meta inicial na mesma transação
func (r *adviserRepository) Create(ctx context.Context, adviser *domain.Adviser, goal *domain.Goal) (*domain.Adviser, error) {
	query, args, err := squirrel.
		Insert(advisersTable).
		Columns("name", "lastname", "active", "upt").
		Values(adviser.Name, adviser.Lastname, adviser.Active, adviser.UPT).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.InTransaction(ctx, func(ctx context.Context) error {
		q := r.conn.Queryer(ctx)
		if err := q.QueryRowContext(ctx, query, args...).Scan(&adviser.ID, &adviser.CreatedAt, &adviser.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir assessor: %w", err)
		}

		if goal == nil {
			return nil
		}

		goal.AdviserID = adviser.ID
		if _, err := upsertGoal(ctx, q, goal); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return adviser, nil
}

func (r *adviserRepository) Update(ctx context.Context, adviser *domain.Adviser) error {
	query, args, err := squirrel.
		Update(advisersTable).
		Set("name", adviser.Name).
		Set("lastname", adviser.Lastname).
		Set("active", adviser.Active).
		Set("upt", adviser.UPT).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": adviser.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar assessor: %w", err)
	}

	return nil
}

// Delete remove o assessor; vendas, metas e resumos são removidos em cascata
func (r *adviserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := squirrel.
		Delete(advisersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Queryer(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover assessor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdviser(row rowScanner) (*domain.Adviser, error) {
	adviser := &domain.Adviser{}
	var upt sql.NullFloat64

	err := row.Scan(
		&adviser.ID,
		&adviser.Name,
		&adviser.Lastname,
		&adviser.Active,
		&upt,
		&adviser.CreatedAt,
		&adviser.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if upt.Valid {
		adviser.UPT = &upt.Float64
	}

	return adviser, nil
}

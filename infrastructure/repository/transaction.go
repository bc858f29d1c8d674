package repository

import (
	"context"

	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

// Transactor agrupa escritas de repositórios diferentes em uma única transação.
// Os repositórios chamados com o contexto recebido por fn participam dela.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTransactor(conn *postgres.Connection) Transactor {
	return conn
}

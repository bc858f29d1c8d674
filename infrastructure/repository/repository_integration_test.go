//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpis-manager-api/infrastructure/migration"
	"github.com/vfg2006/kpis-manager-api/internal/config"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
)

func newDatabase(t *testing.T) *postgres.Connection {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("kpis"),
		postgrescontainer.WithUsername("kpis"),
		postgrescontainer.WithPassword("kpis"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn := waitForDatabase(t, dsn)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migration.Up(conn.DB))
	return conn
}

// waitForDatabase tenta conectar até o container aceitar conexões
func waitForDatabase(t *testing.T, dsn string) *postgres.Connection {
	deadline := time.Now().Add(30 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
		cancel()
		if err == nil {
			return conn
		}
		if time.Now().After(deadline) {
			require.NoError(t, err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func TestRepositories_Integration(t *testing.T) {
	ctx := context.Background()
	conn := newDatabase(t)

	adviserRepo := NewAdviserRepository(conn)
	goalRepo := NewGoalRepository(conn)
	saleRepo := NewSaleRepository(conn)
	summaryRepo := NewMonthlySummaryRepository(conn)
	storeMetricsRepo := NewStoreMetricsRepository(conn)

	adviser, err := adviserRepo.Create(ctx, &domain.Adviser{Name: "Ana", Lastname: "Souza", Active: true},
		&domain.Goal{Year: 2024, Month: 3, GoalValue: 1000})
	require.NoError(t, err)

	t.Run("Meta única por período", func(t *testing.T) {
		_, err := goalRepo.Upsert(ctx, &domain.Goal{AdviserID: adviser.ID, Year: 2024, Month: 3, GoalValue: 1500})
		require.NoError(t, err)

		goal, err := goalRepo.GetByAdviserAndPeriod(ctx, adviser.ID, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, goal.GoalValue)
	})

	t.Run("Vendas no intervalo fechado da semana", func(t *testing.T) {
		for i, day := range []int{3, 4, 10, 11} {
			_, err := saleRepo.Create(ctx, &domain.Sale{
				AdviserID: adviser.ID,
				Code:      "SALE" + string(rune('A'+i)),
				Amount:    100,
				SaleDate:  time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
		}

		window := domain.WeekOf(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
		sales, err := saleRepo.ListByAdviserAndDateRange(ctx, adviser.ID, window.Start, window.End)
		require.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Equal(t, window.Start, sales[0].SaleDate)
		assert.Equal(t, window.End, sales[1].SaleDate)
	})

	t.Run("Resumo com controle de versão", func(t *testing.T) {
		summary := domain.NewMonthlySummary(adviser.ID, 2024, 3)
		require.NoError(t, summaryRepo.Create(ctx, summary))
		assert.ErrorIs(t, summaryRepo.Create(ctx, domain.NewMonthlySummary(adviser.ID, 2024, 3)), ErrVersionConflict)

		stale := *summary

		summary.TotalSales = 200
		require.NoError(t, summaryRepo.Save(ctx, summary))

		stale.TotalSales = 999
		assert.ErrorIs(t, summaryRepo.Save(ctx, &stale), ErrVersionConflict)

		stored, err := summaryRepo.GetByAdviserAndPeriod(ctx, adviser.ID, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 200.0, stored.TotalSales)
		assert.Equal(t, summary.Version, stored.Version)
	})

	t.Run("Transação desfeita não deixa venda no livro", func(t *testing.T) {
		april := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

		err := conn.InTransaction(ctx, func(ctx context.Context) error {
			_, err := saleRepo.Create(ctx, &domain.Sale{AdviserID: adviser.ID, Code: "ROLLBK01", Amount: 50, SaleDate: april})
			require.NoError(t, err)
			return errors.New("falha ao atualizar resumo")
		})
		require.Error(t, err)

		window := domain.WeekOf(april)
		sales, err := saleRepo.ListByAdviserAndDateRange(ctx, adviser.ID, window.Start, window.End)
		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("Conflito na criação do resumo mantém a transação utilizável", func(t *testing.T) {
		err := conn.InTransaction(ctx, func(ctx context.Context) error {
			err := summaryRepo.Create(ctx, domain.NewMonthlySummary(adviser.ID, 2024, 3))
			require.ErrorIs(t, err, ErrVersionConflict)

			existing, err := summaryRepo.GetByAdviserAndPeriod(ctx, adviser.ID, 2024, 3)
			require.NoError(t, err)
			require.NotNil(t, existing)

			existing.TotalSales += 10
			return summaryRepo.Save(ctx, existing)
		})
		require.NoError(t, err)

		stored, err := summaryRepo.GetByAdviserAndPeriod(ctx, adviser.ID, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 210.0, stored.TotalSales)
	})

	t.Run("Métricas da loja por período", func(t *testing.T) {
		metrics := &domain.StoreMetrics{Year: 2024, Month: 3, Paf: 350}
		metrics.Recalculate(400, 500)
		require.NoError(t, storeMetricsRepo.Upsert(ctx, metrics))

		metrics.Paf = 800
		metrics.Recalculate(400, 500)
		require.NoError(t, storeMetricsRepo.Upsert(ctx, metrics))

		stored, err := storeMetricsRepo.GetByPeriod(ctx, 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 800.0, stored.Paf)
		assert.InDelta(t, 50.0, stored.PercentagePr, 1e-9)
	})

	t.Run("Remoção em cascata", func(t *testing.T) {
		deleted, err := adviserRepo.Delete(ctx, adviser.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		summary, err := summaryRepo.GetByAdviserAndPeriod(ctx, adviser.ID, 2024, 3)
		require.NoError(t, err)
		assert.Nil(t, summary)
	})
}

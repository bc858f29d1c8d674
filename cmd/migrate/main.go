package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpis-manager-api/infrastructure/migration"
	"github.com/vfg2006/kpis-manager-api/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Gerencia o schema do banco de KPIs",
	}

	root.AddCommand(
		newMigrationCmd("up", "Aplica as migrações pendentes", migration.Up),
		newMigrationCmd("down", "Desfaz todas as migrações", migration.Down),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newMigrationCmd(use, short string, run func(*sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
				return err
			}
			defer conn.Close()

			return run(conn.DB)
		},
	}
}

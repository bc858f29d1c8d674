package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpis-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kpis-manager-api/infrastructure/migration"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository"
	"github.com/vfg2006/kpis-manager-api/internal/api"
	"github.com/vfg2006/kpis-manager-api/internal/config"
	"github.com/vfg2006/kpis-manager-api/internal/scheduler"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/advising"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/comparing"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/goalsetting"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/measuring"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/selling"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/summarizing"
	"github.com/vfg2006/kpis-manager-api/pkg/keylock"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	adviserRepo := repository.NewAdviserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	summaryRepo := repository.NewMonthlySummaryRepository(pgConn)
	storeMetricsRepo := repository.NewStoreMetricsRepository(pgConn)
	transactor := repository.NewTransactor(pgConn)

	// Um único locker por processo serializa as escritas de mesma chave
	locks := keylock.New()

	summarizer := summarizing.NewService(summaryRepo, goalRepo, locks, cfg)
	goalSetter := goalsetting.NewService(adviserRepo, goalRepo, summarizer, transactor)
	seller := selling.NewService(adviserRepo, saleRepo, summarizer, transactor)
	comparer := comparing.NewService(adviserRepo, saleRepo, locks)
	measurer := measuring.NewService(adviserRepo, goalRepo, summaryRepo)
	budgeter := budgeting.NewService(storeMetricsRepo, measurer, locks)
	adviserService := advising.NewService(adviserRepo)
	authenticator := authenticating.NewService(cfg)

	storeMetricsRecalcService := scheduler.NewStoreMetricsRecalcService(budgeter, cfg)
	if err := storeMetricsRecalcService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo das métricas da loja")
	} else {
		logrus.Info("Agendador de recálculo das métricas da loja iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		api.Services{
			Seller:        seller,
			Summarizer:    summarizer,
			GoalSetter:    goalSetter,
			Comparer:      comparer,
			Measurer:      measurer,
			Budgeter:      budgeter,
			Advisers:      adviserService,
			Authenticator: authenticator,
		},
		storeMetricsRecalcService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite carregar o .env local ao rodar com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpis-manager-api/internal/api/handler"
	"github.com/vfg2006/kpis-manager-api/internal/api/handler/router"
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
	"github.com/vfg2006/kpis-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Seller        selling.Seller
	Summarizer    summarizing.Summarizer
	GoalSetter    goalsetting.GoalSetter
	Comparer      comparing.Comparer
	Measurer      measuring.Measurer
	Budgeter      budgeting.Budgeter
	Advisers      advising.AdviserService
	Authenticator authenticating.Authenticator
}

func New(
	config *config.Config,
	services Services,
	storeMetricsRecalcService *scheduler.StoreMetricsRecalcService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		StoreMetricsRecalc: storeMetricsRecalcService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services, cronServices handler.CronJobServices) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(services.Seller)...),
		router.WithRoutes(handler.Goals(services.GoalSetter)...),
		router.WithRoutes(handler.Metrics(services.Measurer)...),
		router.WithRoutes(handler.MonthlySummaries(services.Summarizer)...),
		router.WithRoutes(handler.StoreMetrics(services.Budgeter)...),
		router.WithRoutes(handler.WeeklyComparisons(services.Comparer)...),
		router.WithRoutes(handler.Advisers(services.Advisers)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpis-manager-api/internal/config"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/internal/usecases/budgeting"
)

// StoreMetricsRecalcConfig representa a configuração do agendador de recálculo das métricas da loja
type StoreMetricsRecalcConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// StoreMetricsRecalcService recalcula periodicamente os percentuais da loja do mês
// corrente e dos meses anteriores configurados
type StoreMetricsRecalcService struct {
	scheduler            *gocron.Scheduler
	config               StoreMetricsRecalcConfig
	budgeter             budgeting.Budgeter
	now                  func() time.Time
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSyncStartedAt    time.Time
	lastSyncCompletedAt  time.Time
	lastSyncRecalculated int
}

func NewStoreMetricsRecalcService(budgeter budgeting.Budgeter, appConfig *config.Config) *StoreMetricsRecalcService {
	recalcConfig := StoreMetricsRecalcConfig{
		CronSchedule:  appConfig.StoreMetricsRecalc.CronSchedule,
		SyncEnabled:   appConfig.StoreMetricsRecalc.Enabled,
		MonthLookBack: appConfig.StoreMetricsRecalc.MonthLookBack,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   recalcConfig.CronSchedule,
		"sync_enabled":    recalcConfig.SyncEnabled,
		"month_look_back": recalcConfig.MonthLookBack,
	}).Info("Configuração do agendador de métricas da loja carregada")

	return &StoreMetricsRecalcService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    recalcConfig,
		budgeter:  budgeter,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *StoreMetricsRecalcService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo das métricas da loja desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo das métricas da loja")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recalculateStoreMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo das métricas da loja: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo das métricas da loja")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *StoreMetricsRecalcService) recalculateStoreMetrics(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo das métricas da loja já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	recalculated := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncRecalculated = recalculated
		s.syncMutex.Unlock()
	}()

	for _, period := range s.periods() {
		year, month := period.Year(), int(period.Month())

		logger := logrus.WithFields(logrus.Fields{
			"year":  year,
			"month": month,
		})

		_, err := s.budgeter.Recalculate(ctx, &year, &month, budgeting.TriggerScheduled)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Período sem PAF cadastrado, nada a recalcular")
			continue
		}
		if err != nil {
			logger.WithError(err).Error("Erro ao recalcular métricas da loja")
			continue
		}

		recalculated++
	}

	logrus.WithField("recalculated", recalculated).Info("Recálculo das métricas da loja concluído")
}

// periods retorna o primeiro dia do mês corrente e dos MonthLookBack meses anteriores
func (s *StoreMetricsRecalcService) periods() []time.Time {
	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	periods := make([]time.Time, 0, s.config.MonthLookBack+1)
	for i := 0; i <= s.config.MonthLookBack; i++ {
		periods = append(periods, current.AddDate(0, -i, 0))
	}
	return periods
}

// TriggerManualSync inicia manualmente o recálculo
func (s *StoreMetricsRecalcService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo das métricas da loja já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual das métricas da loja")
	go s.recalculateStoreMetrics(context.Background())
}

// GetStatus retorna o status atual do recálculo
func (s *StoreMetricsRecalcService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_recalculated": s.lastSyncRecalculated,
	}
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prosocial/zen-api/infrastructure/repository"
	"github.com/prosocial/zen-api/internal/config"
	"github.com/prosocial/zen-api/internal/domain"
	"github.com/prosocial/zen-api/internal/usecases/dashboarding"
	"github.com/prosocial/zen-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DashboardWarmupConfig representa a configuração do agendador de aquecimento do dashboard
type DashboardWarmupConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	WarmupEnabled     bool
}

// DashboardWarmupService recompõe periodicamente o snapshot de cada estúdio
// ativo para que a primeira visita do dia já encontre o cache quente.
type DashboardWarmupService struct {
	scheduler          *gocron.Scheduler
	config             DashboardWarmupConfig
	studioRepo         repository.StudioRepository
	dashboardService   dashboarding.Dashboarder
	warmupRunning      bool
	warmupMutex        sync.Mutex
	lastRunID          string
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewDashboardWarmupService cria uma nova instância do serviço de aquecimento do dashboard
func NewDashboardWarmupService(
	studioRepo repository.StudioRepository,
	dashboardService dashboarding.Dashboarder,
	appConfig *config.Config,
) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule:      appConfig.DashboardWarmup.CronSchedule,
		MaxConcurrentJobs: appConfig.DashboardWarmup.MaxConcurrentJobs,
		WarmupEnabled:     appConfig.DashboardWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       warmupConfig.CronSchedule,
		"max_concurrent_jobs": warmupConfig.MaxConcurrentJobs,
		"warmup_enabled":      warmupConfig.WarmupEnabled,
	}).Info("Configuração do agendador de aquecimento do dashboard carregada")

	return &DashboardWarmupService{
		scheduler:        scheduler,
		config:           warmupConfig,
		studioRepo:       studioRepo,
		dashboardService: dashboardService,
		warmupRunning:    false,
	}
}

// Start inicia o agendador
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.WarmupEnabled {
		logrus.Info("Aquecimento do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupAllStudios(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// warmupAllStudios recompõe o snapshot de todos os estúdios ativos
func (s *DashboardWarmupService) warmupAllStudios(ctx context.Context) {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento do dashboard já em andamento, ignorando")
		return
	}
	s.warmupRunning = true
	s.warmupMutex.Unlock()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("warmup-%d", time.Now().UnixNano())
	}

	startTime := time.Now()
	s.lastRunID = runID
	s.lastRunStartedAt = startTime

	defer func() {
		s.warmupMutex.Lock()
		s.warmupRunning = false
		s.warmupMutex.Unlock()
	}()

	logrus.WithField("run_id", runID).Info("Iniciando aquecimento do dashboard para todos os estúdios ativos")

	studios, err := s.studioRepo.ListActivos(ctx)
	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Erro ao buscar estúdios para aquecimento do dashboard")
		return
	}

	if len(studios) == 0 {
		logrus.WithField("run_id", runID).Info("Nenhum estúdio ativo encontrado para aquecimento do dashboard")
		return
	}

	s.warmupStudios(ctx, runID, studios)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": duration.String(),
		"studios":  len(studios),
	}).Info("Aquecimento do dashboard concluído")

	s.lastRunCompletedAt = time.Now()
}

// warmupStudios processa os estúdios com um número limitado de workers concorrentes
func (s *DashboardWarmupService) warmupStudios(ctx context.Context, runID string, studios []*domain.Studio) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, studio := range studios {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(st *domain.Studio) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.warmupStudio(ctx, runID, st)
		}(studio)
	}

	wg.Wait()
}

// warmupStudio invalida e recompõe o snapshot de um único estúdio
func (s *DashboardWarmupService) warmupStudio(ctx context.Context, runID string, studio *domain.Studio) {
	logger := logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"studio_id":   studio.ID,
		"studio_name": studio.Nombre,
	})

	// Invalidar primeiro para que a composição grave dados frescos
	if err := s.dashboardService.InvalidateSnapshot(ctx, studio.ID); err != nil {
		logger.WithError(err).Warn("Erro ao invalidar snapshot antes do aquecimento")
	}

	if _, err := s.dashboardService.ComposeSnapshot(ctx, studio.ID); err != nil {
		logger.WithError(err).Error("Erro ao aquecer dashboard do estúdio")
		return
	}

	logger.Info("Dashboard do estúdio aquecido com sucesso")
}

// TriggerManualSync inicia manualmente um aquecimento do dashboard
func (s *DashboardWarmupService) TriggerManualSync() {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.warmupMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do dashboard")
	go s.warmupAllStudios(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DashboardWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"warmup_enabled":        s.config.WarmupEnabled,
		"warmup_cron":           s.config.CronSchedule,
		"warmup_max_concurrent": s.config.MaxConcurrentJobs,
		"last_run_id":           s.lastRunID,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}

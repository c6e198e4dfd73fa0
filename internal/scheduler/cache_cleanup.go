package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/repository"
	"github.com/snapix-app/snapix-api/internal/config"
)

// CacheCleanupConfig representa a configuração da varredura do cache
type CacheCleanupConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// CacheCleanupService agenda a remoção das entradas de cache vencidas. A
// leitura do cache já despreza entradas expiradas; a varredura só impede que
// a tabela cresça sem limite
type CacheCleanupService struct {
	scheduler          *gocron.Scheduler
	config             CacheCleanupConfig
	cacheRepository    repository.CacheEntryRepository
	sweepRunning       bool
	sweepMutex         sync.Mutex
	lastSweepStartedAt time.Time
	lastSweepRemoved   int64
}

// NewCacheCleanupService cria uma nova instância do serviço de limpeza do cache
func NewCacheCleanupService(
	cacheRepository repository.CacheEntryRepository,
	appConfig *config.Config,
) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule: appConfig.Cache.CleanupCron,
		SweepEnabled: appConfig.Cache.SweepEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"sweep_enabled": cleanupConfig.SweepEnabled,
	}).Info("Configuração da varredura do cache carregada")

	return &CacheCleanupService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          cleanupConfig,
		cacheRepository: cacheRepository,
		sweepRunning:    false,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SweepExpiredEntries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepExpiredEntries remove as entradas vencidas. Também é chamado pelo
// endpoint de cron manual
func (s *CacheCleanupService) SweepExpiredEntries() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("Varredura do cache já em andamento, ignorando disparo")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	removed, err := s.cacheRepository.DeleteExpired()
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Erro ao remover entradas vencidas do cache")
		return
	}

	s.sweepMutex.Lock()
	s.lastSweepRemoved = removed
	s.sweepMutex.Unlock()

	logrus.WithField("removed", removed).Info("Varredura do cache concluída")
}

// Status retorna o estado atual da varredura para o endpoint de monitoramento
func (s *CacheCleanupService) Status() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SweepEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.sweepRunning,
		"last_removed":  s.lastSweepRemoved,
	}

	if !s.lastSweepStartedAt.IsZero() {
		status["last_started_at"] = s.lastSweepStartedAt.Format(time.RFC3339)
	}

	return status
}

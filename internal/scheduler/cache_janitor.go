// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/cache"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
)

type CacheJanitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheJanitorService varre periodicamente o cache de resultados e
// remove entradas expiradas. Entradas expiradas nunca são servidas; a
// varredura só recupera a memória que elas ocupam.
type CacheJanitorService struct {
	scheduler   *gocron.Scheduler
	resultCache *cache.ResultCache
	config      CacheJanitorConfig

	sweepRunning     bool
	sweepMutex       sync.Mutex
	lastSweepStarted time.Time
}

func NewCacheJanitorService(
	resultCache *cache.ResultCache,
	cfg *config.Config,
) *CacheJanitorService {
	janitorConfig := CacheJanitorConfig{
		CronSchedule: cfg.CacheJanitor.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.CacheJanitor.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": janitorConfig.CronSchedule,
	}).Info("Configuração da varredura do cache de resultados carregada")

	return &CacheJanitorService{
		scheduler:   scheduler,
		resultCache: resultCache,
		config:      janitorConfig,
	}
}

func (s *CacheJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de varredura do cache de resultados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de varredura do cache de resultados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SweepExpiredEntries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura do cache de resultados: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de varredura do cache de resultados")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheJanitorService) SweepExpiredEntries() {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	if s.sweepRunning {
		logrus.Warn("Varredura do cache de resultados já está em execução")
		return
	}

	s.sweepRunning = true
	s.lastSweepStarted = time.Now()
	defer func() {
		s.sweepRunning = false
	}()

	removed := s.resultCache.Sweep()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.resultCache.Len(),
	}).Info("Varredura do cache de resultados concluída")
}

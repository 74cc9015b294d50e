// Package scheduler agenda as rotinas de manutenção executadas em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insight-api/internal/config"
	"github.com/vfg2006/sales-insight-api/pkg/metrics"
)

// Sweeper remove os artefatos de relatório mais antigos que maxAge
type Sweeper interface {
	Sweep(maxAge time.Duration) (int, error)
}

// ArtifactRetentionConfig representa a configuração da limpeza de artefatos
type ArtifactRetentionConfig struct {
	CronSchedule string
	MaxAge       time.Duration
	Enabled      bool
}

// ArtifactRetentionService remove periodicamente os relatórios antigos do disco
type ArtifactRetentionService struct {
	scheduler       *gocron.Scheduler
	config          ArtifactRetentionConfig
	sweeper         Sweeper
	sweepRunning    bool
	sweepMutex      sync.Mutex
	lastSweepAt     time.Time
	lastSweepRemove int
}

// NewArtifactRetentionService cria o serviço de retenção a partir da configuração global
func NewArtifactRetentionService(sweeper Sweeper, appConfig *config.Config) *ArtifactRetentionService {
	retentionConfig := ArtifactRetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		MaxAge:       appConfig.Retention.MaxAge,
		Enabled:      appConfig.Retention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"max_age":       retentionConfig.MaxAge.String(),
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração da retenção de artefatos carregada")

	return &ArtifactRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retentionConfig,
		sweeper:   sweeper,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto for cancelado
func (s *ArtifactRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de artefatos desabilitada por configuração")
		return nil
	}
	if s.config.MaxAge <= 0 {
		return fmt.Errorf("idade máxima de artefatos inválida: %s", s.config.MaxAge)
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de artefatos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de artefatos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep executa uma limpeza, ignorando a chamada se outra estiver em andamento
func (s *ArtifactRetentionService) RunSweep() (int, error) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Retenção de artefatos já em andamento, ignorando")
		return 0, nil
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	startTime := time.Now()
	removed, err := s.sweeper.Sweep(s.config.MaxAge)
	metrics.ArtifactsSweptTotal.Add(float64(removed))

	s.sweepMutex.Lock()
	s.lastSweepAt = startTime
	s.lastSweepRemove = removed
	s.sweepMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("removed", removed).Error("Erro durante a retenção de artefatos")
		return removed, err
	}

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Retenção de artefatos concluída")

	return removed, nil
}

// LastSweep retorna o horário e a quantidade removida da última limpeza
func (s *ArtifactRetentionService) LastSweep() (time.Time, int) {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()
	return s.lastSweepAt, s.lastSweepRemove
}

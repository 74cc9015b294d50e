package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insight-api/infrastructure/report"
	"github.com/vfg2006/sales-insight-api/infrastructure/storage"
	"github.com/vfg2006/sales-insight-api/infrastructure/tabular"
	"github.com/vfg2006/sales-insight-api/internal/api"
	"github.com/vfg2006/sales-insight-api/internal/config"
	"github.com/vfg2006/sales-insight-api/internal/scheduler"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	artifactStore, err := storage.NewArtifactStore(cfg.Upload.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de artefatos")
	}

	insightService := insighting.NewService(
		cfg,
		tabular.NewFileLoader(),
		report.NewRenderer(),
		artifactStore,
	)

	retentionService := scheduler.NewArtifactRetentionService(artifactStore, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de artefatos")
	} else {
		logrus.Info("Agendador de retenção de artefatos iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/database/postgres"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/repository"
	"github.com/snapix-app/snapix-api/internal/api"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/scheduler"
	"github.com/snapix-app/snapix-api/internal/usecases/account"
	"github.com/snapix-app/snapix-api/internal/usecases/authenticating"
	"github.com/snapix-app/snapix-api/internal/usecases/campaigning"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	cacheRepo := repository.NewCacheEntryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	facebookClient := fbclient.NewClient(cfg)
	facebookIntegrator := facebook.New(cfg, facebookClient)

	accountService := account.NewService(facebookIntegrator, adAccountRepo, cacheRepo, cfg)

	campaignService := campaigning.NewService(
		cfg,
		facebookIntegrator,
		adAccountRepo,
		campaignRepo,
		cacheRepo,
	)

	// Inicializa a varredura periódica do cache
	cacheCleanupService := scheduler.NewCacheCleanupService(cacheRepo, cfg)

	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura do cache")
	} else {
		logrus.Info("Agendador de varredura do cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		accountService,
		authenticator,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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

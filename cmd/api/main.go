package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prosocial/zen-api/infrastructure/cache"
	"github.com/prosocial/zen-api/infrastructure/database/postgres"
	"github.com/prosocial/zen-api/infrastructure/repository"
	"github.com/prosocial/zen-api/internal/api"
	"github.com/prosocial/zen-api/internal/config"
	"github.com/prosocial/zen-api/internal/scheduler"
	"github.com/prosocial/zen-api/internal/usecases/authenticating"
	"github.com/prosocial/zen-api/internal/usecases/dashboarding"
	"github.com/sirupsen/logrus"
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

	studioRepo := repository.NewStudioRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	agendaRepo := repository.NewAgendaRepository(pgConn)
	eventoRepo := repository.NewEventoRepository(pgConn)
	cotizacionRepo := repository.NewCotizacionRepository(pgConn)
	pagoRepo := repository.NewPagoRepository(pgConn)
	clienteRepo := repository.NewClienteRepository(pgConn)
	etapaRepo := repository.NewEtapaRepository(pgConn)
	citaRepo := repository.NewCitaRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	dashboardService := dashboarding.NewService(
		cfg,
		agendaRepo,
		eventoRepo,
		cotizacionRepo,
		pagoRepo,
		clienteRepo,
		etapaRepo,
		citaRepo,
	)

	// Habilita o cache de snapshots quando o Redis estiver configurado
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		defer redisClient.Close()

		dashboardService = dashboardService.WithCache(cache.NewSnapshotCache(redisClient))
		logrus.Info("Cache de snapshots do dashboard habilitado")
	}

	// Inicializa o agendador de aquecimento do cache do dashboard
	warmupService := scheduler.NewDashboardWarmupService(studioRepo, dashboardService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do dashboard")
	} else {
		logrus.Info("Agendador de aquecimento do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		authenticator,
		warmupService,
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	natsclient "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/0xsj/overwatch-pkg/log"

	accountshttp "github.com/0xsj/overwatch-accounts/internal/adapter/inbound/http"
	mongoadapter "github.com/0xsj/overwatch-accounts/internal/adapter/outbound/mongo"
	natsadapter "github.com/0xsj/overwatch-accounts/internal/adapter/outbound/nats"
	"github.com/0xsj/overwatch-accounts/internal/adapter/outbound/policy"
	rediscache "github.com/0xsj/overwatch-accounts/internal/adapter/outbound/redis"
	"github.com/0xsj/overwatch-accounts/internal/app/command"
	"github.com/0xsj/overwatch-accounts/internal/app/query"
	"github.com/0xsj/overwatch-accounts/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.NewPretty(log.DefaultConfig())

	logger.Info("starting accounts service",
		log.String("version", "1.0.0"),
		log.String("address", cfg.Server.Address()),
	)

	// Connect to MongoDB
	mongoClient, db, err := connectMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	defer natsConn.Close()

	// Initialize repositories
	accountRepo := mongoadapter.NewAccountRepository(db)
	userRepo := mongoadapter.NewUserRepository(db)

	// Initialize caches
	accountCache := rediscache.NewAccountCache(redisClient, cfg.Redis.CacheTTL)

	// Initialize event publisher
	eventPublisher := natsadapter.NewEventPublisher(natsConn, cfg.NATS.SubjectPrefix)

	// Initialize authorizer
	authorizer := policy.NewScopeAuthorizer()

	// Initialize handlers
	updateAccountHandler := command.NewUpdateAccountHandler(
		accountRepo,
		userRepo,
		accountCache,
		eventPublisher,
		authorizer,
	)
	getAccountHandler := query.NewGetAccountHandler(accountRepo, accountCache)

	// Initialize HTTP handler and server
	handler := accountshttp.NewHandler(accountshttp.HandlerConfig{
		UpdateAccountHandler: updateAccountHandler,
		GetAccountHandler:    getAccountHandler,
		Logger:               logger,
	})

	serverCfg := accountshttp.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	server, err := accountshttp.NewServer(serverCfg, handler, []byte(cfg.Auth.SigningKey), logger)
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	// Handle graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("accounts service started", log.String("address", serverCfg.Address()))

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received shutdown signal", log.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}

		logger.Info("accounts service stopped gracefully")
		return nil
	}
}

func connectMongo(ctx context.Context, cfg config.MongoConfig, logger log.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer connectCancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("connected to mongo",
		log.String("database", cfg.Database),
	)

	return client, client.Database(cfg.Database), nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, logger log.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis",
		log.String("address", cfg.Address()),
	)

	return client, nil
}

func connectNATS(cfg config.NATSConfig, logger log.Logger) (*natsclient.Conn, error) {
	opts := []natsclient.Option{
		natsclient.MaxReconnects(cfg.MaxReconnects),
		natsclient.ReconnectWait(cfg.ReconnectWait),
		natsclient.DisconnectErrHandler(func(nc *natsclient.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", log.String("error", err.Error()))
			}
		}),
		natsclient.ReconnectHandler(func(nc *natsclient.Conn) {
			logger.Info("nats reconnected", log.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := natsclient.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to nats",
		log.String("url", conn.ConnectedUrl()),
	)

	return conn, nil
}

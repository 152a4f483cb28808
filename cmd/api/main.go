package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/leadtrack/internal/entity"
	"github.com/xavierca1/leadtrack/internal/infra/config"
	"github.com/xavierca1/leadtrack/internal/infra/database"
	"github.com/xavierca1/leadtrack/internal/infra/http/handlers"
	"github.com/xavierca1/leadtrack/internal/infra/http/middleware"
	"github.com/xavierca1/leadtrack/internal/infra/logging"
	"github.com/xavierca1/leadtrack/internal/infra/mail"
	"github.com/xavierca1/leadtrack/internal/infra/queue"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// 1. Store
	var repo entity.LeadRepositoryInterface
	var pingStore handlers.StorePinger

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer db.Close()

		repo = database.NewPostgresLeadRepository(db)
		pingStore = handlers.PingFunc(db.PingContext)
		logger.Info("Postgres connected")

	default:
		client, err := database.NewMongoConnection(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatal("mongodb connection failed", zap.Error(err))
		}
		defer client.Disconnect(ctx)

		mongoRepo := database.NewMongoLeadRepository(client.Database(cfg.MongoDB))
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("mongodb index setup failed", zap.Error(err))
		}

		repo = mongoRepo
		pingStore = handlers.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})
		logger.Info("MongoDB connected", zap.String("database", cfg.MongoDB))
	}

	// 2. Events + notification worker (optional)
	var events usecase.LeadEventPublisher
	var rabbitConn *amqp.Connection

	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			logger.Fatal("rabbitmq connection failed", zap.Error(err))
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		logger.Info("RabbitMQ connected")

		if cfg.MailEnabled() {
			sender := mail.NewEmailSender(
				cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
				cfg.Mail.From, cfg.Mail.To,
			)
			worker := queue.NewWorker(rabbitMQ.Ch, sender, logger)
			go func() {
				if err := worker.Start(queue.QueueName); err != nil {
					logger.Error("notification worker stopped", zap.Error(err))
				}
			}()
		}
	}

	// 3. UseCases
	createUC := usecase.NewCreateLeadUseCase(repo, events, logger)
	listUC := usecase.NewListLeadsUseCase(repo, logger)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createUC, listUC)
	healthHandler := handlers.NewHealthHandler(pingStore, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/leads", leadHandler.HandleList)
		r.Post("/leads", leadHandler.HandleCreate)
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

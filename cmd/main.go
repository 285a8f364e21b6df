package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-nutriplan/docs"
	"github.com/sbilibin2017/gw-nutriplan/internal/config"
	"github.com/sbilibin2017/gw-nutriplan/internal/facades"
	"github.com/sbilibin2017/gw-nutriplan/internal/grpcserver"
	"github.com/sbilibin2017/gw-nutriplan/internal/handlers"
	"github.com/sbilibin2017/gw-nutriplan/internal/jwt"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/metrics"
	"github.com/sbilibin2017/gw-nutriplan/internal/middlewares"
	"github.com/sbilibin2017/gw-nutriplan/internal/migrations"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/sbilibin2017/gw-nutriplan/internal/repositories"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// apiVersion is reported by GET /api/.
const apiVersion = "1.0.0"

// @title nutriplan API
// @version 1.0.0
// @description Personalized meal plans, progress tracking and subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// appServices groups the use cases the router exposes.
type appServices struct {
	auth          *services.AuthService
	questionnaire *services.QuestionnaireService
	plans         *services.PlanService
	progress      *services.ProgressService
	hydration     *services.HydrationService
	payments      *services.PaymentService
	admin         *services.AdminService
}

// run initializes the logger, database, Redis, external clients and both servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, false); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := migrations.Run(db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	probes := []grpcserver.Opt{grpcserver.WithProbe("postgres", db.PingContext)}

	// Redis backs the admin stats cache and is optional
	var statsCache services.AdminStatsCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		statsCache = repositories.NewAdminStatsCacheRepository(rdb, cfg.AdminStatsTTL)
		probes = append(probes, grpcserver.WithProbe("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}

	m := metrics.New()
	calc := nutrition.NewCalculator(cfg.Keywords())
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecret), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	questionnaireWriteRepo := repositories.NewQuestionnaireWriteRepository(db)
	questionnaireReadRepo := repositories.NewQuestionnaireReadRepository(db)
	mealPlanWriteRepo := repositories.NewMealPlanWriteRepository(db)
	mealPlanReadRepo := repositories.NewMealPlanReadRepository(db)
	weightWriteRepo := repositories.NewWeightWriteRepository(db)
	weightReadRepo := repositories.NewWeightReadRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	hydrationRepo := repositories.NewHydrationRepository(db)
	paymentWriteRepo := repositories.NewPaymentWriteRepository(db, txGetter)
	paymentReadRepo := repositories.NewPaymentReadRepository(db, txGetter)
	adminRepo := repositories.NewAdminRepository(db)
	txRunner := repositories.NewTxRunner(db, txGetter, middlewares.WithTx)

	// External services
	drafter := facades.NewOpenAIDrafter(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
	checkout := facades.NewStripeCheckout(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	planOpts := []services.PlanServiceOpt{services.WithPlanMetrics(m)}
	if cfg.PDFBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return fmt.Errorf("load AWS config: %w", err)
		}
		planOpts = append(planOpts, services.WithPDFArchive(facades.NewS3Archive(s3.NewFromConfig(awsCfg), cfg.PDFBucket)))
	}

	paymentOpts := []services.PaymentServiceOpt{services.WithPaymentMetrics(m)}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kafkaWriter.Close()
		paymentOpts = append(paymentOpts, services.WithKafkaWriter(kafkaWriter))
	}

	// Initialize services
	svc := appServices{
		auth:          services.NewAuthService(userReadRepo, userWriteRepo, tokens),
		questionnaire: services.NewQuestionnaireService(questionnaireWriteRepo, questionnaireReadRepo),
		plans: services.NewPlanService(userReadRepo, questionnaireReadRepo, mealPlanWriteRepo, mealPlanReadRepo,
			drafter, calc, cfg.MealsPerDay, planOpts...),
		progress:  services.NewProgressService(weightWriteRepo, weightReadRepo, goalRepo, questionnaireReadRepo, calc),
		hydration: services.NewHydrationService(hydrationRepo, questionnaireReadRepo, calc),
		payments: services.NewPaymentService(checkout, paymentWriteRepo, paymentReadRepo, userWriteRepo,
			txRunner, cfg.Plans(), paymentOpts...),
		admin: services.NewAdminService(cfg.Admins(), adminRepo, statsCache, userReadRepo, userWriteRepo,
			questionnaireReadRepo, mealPlanReadRepo, weightReadRepo, paymentReadRepo, cfg.Plans()),
	}

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           newRouter(db, m, tokens, svc, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddr, err)
	}
	healthSrv := grpcserver.New(lis, probes...)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.RunAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	go func() {
		if err := healthSrv.Run(ctxShutdown); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every endpoint under /api plus the metrics and docs surfaces.
func newRouter(db *sqlx.DB, m *metrics.Metrics, tokens middlewares.Tokener, svc appServices, corsOrigins []string) http.Handler {
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(m))

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/", handlers.NewRootHandler(apiVersion))
		r.Post("/auth/register", handlers.NewRegisterHandler(svc.auth))
		r.Post("/auth/login", handlers.NewLoginHandler(svc.auth))
		r.Post("/webhook/stripe", handlers.NewStripeWebhookHandler(svc.payments))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/auth/me", handlers.NewMeHandler(svc.auth))

			r.Post("/questionnaire", handlers.NewSubmitQuestionnaireHandler(svc.questionnaire))
			r.Get("/questionnaire", handlers.NewGetQuestionnaireHandler(svc.questionnaire))

			r.Post("/meal-plans/trial", handlers.NewTrialPlanHandler(svc.plans))
			r.Post("/meal-plans/generate", handlers.NewGeneratePlanHandler(svc.plans))
			r.Get("/meal-plans", handlers.NewListPlansHandler(svc.plans))
			r.Get("/meal-plans/{id}", handlers.NewGetPlanHandler(svc.plans))
			r.Get("/meal-plans/{id}/pdf", handlers.NewPlanPDFHandler(svc.plans))

			r.Post("/progress/weight", handlers.NewAddWeightHandler(svc.progress))
			r.Get("/progress/weight", handlers.NewListWeightsHandler(svc.progress))
			r.Delete("/progress/weight/{id}", handlers.NewDeleteWeightHandler(svc.progress))
			r.Get("/progress/goal", handlers.NewGetGoalHandler(svc.progress))
			r.Put("/progress/goal", handlers.NewSetGoalHandler(svc.progress))
			r.Get("/progress/stats", handlers.NewStatsHandler(svc.progress))

			r.Get("/hydration/goal", handlers.NewHydrationGoalHandler(svc.hydration))
			r.Post("/hydration/log", handlers.NewHydrationLogHandler(svc.hydration))
			r.Get("/hydration/today", handlers.NewHydrationTodayHandler(svc.hydration))
			r.Get("/hydration/history", handlers.NewHydrationHistoryHandler(svc.hydration))

			r.With(txMiddleware).Post("/payments/checkout", handlers.NewCheckoutHandler(svc.payments))
			r.With(txMiddleware).Get("/payments/status/{session_id}", handlers.NewPaymentStatusHandler(svc.payments))

			r.Get("/admin/check", handlers.NewAdminCheckHandler(svc.admin))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.AdminMiddleware(svc.admin))

				r.Get("/admin/stats", handlers.NewAdminStatsHandler(svc.admin))
				r.Get("/admin/users", handlers.NewAdminUsersHandler(svc.admin))
				r.Get("/admin/users/{id}", handlers.NewAdminUserDetailHandler(svc.admin))
				r.With(txMiddleware).Put("/admin/users/{id}/subscription", handlers.NewAdminSetSubscriptionHandler(svc.admin))
				r.Get("/admin/payments", handlers.NewAdminPaymentsHandler(svc.admin))
			})
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

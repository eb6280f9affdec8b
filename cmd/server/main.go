package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/generation"
	"learnhub/internal/handlers"
	"learnhub/internal/logger"
	"learnhub/internal/metrics"
	"learnhub/internal/repository"
	"learnhub/internal/security"
	"learnhub/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	met := metrics.New(true)
	startup := handlers.NewStartupStatus(
		handlers.StepDatabase,
		handlers.StepMigrations,
		handlers.StepSeed,
		handlers.StepServices,
		handlers.StepReady,
	)

	// The health check answers while the rest of the server initializes.
	var app atomic.Pointer[http.Handler]
	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", startup.Healthz)
	root.Handle("/", startup.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		(*app.Load()).ServeHTTP(w, r)
	})))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Lesson generation can take most of a minute.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	// Initialize database with config (supports sqlite, postgres, mysql)
	startup.SetCurrentStep(handlers.StepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()
	log.Info("database connection established", "type", cfg.DatabaseType)
	startup.CompleteStep(handlers.StepDatabase)

	startup.SetCurrentStep(handlers.StepMigrations)
	applied, err := db.RunMigrations(ctx, cfg.MigrationsPath)
	if err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	log.Info("migrations completed", "applied", len(applied))
	startup.CompleteStep(handlers.StepMigrations)

	startup.SetCurrentStep(handlers.StepSeed)
	if seeded, err := db.SeedChildrenCourses(ctx); err != nil {
		log.Warn("failed to seed children's courses", "error", err)
	} else if seeded > 0 {
		log.Info("seeded children's courses", "count", seeded)
	}
	startup.CompleteStep(handlers.StepSeed)

	startup.SetCurrentStep(handlers.StepServices)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	authService := service.NewAuthService(userRepo, cfg.SessionDuration, log.With("component", "auth"))
	functionTokens := security.NewFunctionTokens(cfg.FunctionSecret, 5*time.Minute)

	gateway := generation.NewGateway(generation.GatewayConfig{
		BaseURL: cfg.GatewayURL,
		APIKey:  cfg.GatewayAPIKey,
		Model:   cfg.GatewayModel,
		Timeout: cfg.GenerationTimeout,
	}, log)

	var lessonGenerator generation.Generator = gateway
	if cfg.GenerationURL != "" {
		var token generation.TokenFunc
		if functionTokens.Enabled() {
			token = func() (string, error) { return functionTokens.Issue("learnhub-server") }
		}
		lessonGenerator = generation.NewClient(cfg.GenerationURL, cfg.GenerationTimeout, token, log)
		log.Info("using remote lesson generation", "url", cfg.GenerationURL)
	}

	controllers := service.NewControllerStore(service.ControllerDeps{
		Courses:   courseRepo,
		Lessons:   lessonRepo,
		Progress:  progressRepo,
		Generator: lessonGenerator,
		Flights:   service.NewGenerationFlights(),
		Metrics:   met,
		Log:       log.With("component", "kids"),
	}, cfg.LearnerIdleTTL)

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
	}

	generateLimiter := security.NewRateLimiter(cfg.GenerateRateLimit, cfg.GenerateRateWindow)
	defer generateLimiter.Stop()

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService, met, log.With("component", "http"))
	authHandler := handlers.NewAuthHandler(authService, oauthProviders, cfg.OAuthRedirectBase, log)
	catalogHandler := handlers.NewCatalogHandler(log)
	kidsHandler := handlers.NewKidsHandler(controllers, log)
	generateHandler := handlers.NewGenerateHandler(gateway, functionTokens, generateLimiter, log.With("component", "generate_lesson"))
	settingsHandler := handlers.NewSettingsHandler(security.NewCSRFGenerator(cfg.CSRFSecret), log)

	// Setup routes
	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Instrument(pattern, h))
	}

	// Course catalog
	route("GET /api/catalog/courses", catalogHandler.ListCourses)
	route("GET /api/catalog/courses/{id}", catalogHandler.GetCourse)
	route("GET /api/catalog/academic", catalogHandler.ListAcademic)
	route("GET /api/catalog/academic/career-paths", catalogHandler.CareerPaths)
	route("GET /api/catalog/programming", catalogHandler.ListProgramming)

	// Kids area
	route("GET /api/kids", kidsHandler.State)
	route("POST /api/kids/courses/load", kidsHandler.LoadCourses)
	route("POST /api/kids/courses/{id}/select", kidsHandler.SelectCourse)
	route("POST /api/kids/courses/clear", kidsHandler.ClearSelection)
	route("POST /api/kids/lessons/load", kidsHandler.LoadLessons)
	route("POST /api/kids/lessons/generate", kidsHandler.GenerateLesson)
	route("POST /api/kids/progress/load", kidsHandler.LoadProgress)
	route("POST /api/kids/lessons/{lessonId}/activities/{index}/complete", kidsHandler.CompleteActivity)

	// Generation function
	route("OPTIONS /functions/generate-lesson", generateHandler.Preflight)
	route("POST /functions/generate-lesson", generateHandler.Generate)

	// Auth
	route("POST /auth/register", authHandler.Register)
	route("POST /auth/login", authHandler.Login)
	route("POST /auth/logout", authHandler.Logout)
	route("GET /auth/me", authHandler.Me)
	route("GET /auth/{provider}/start", authHandler.StartOAuth)
	route("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Settings
	route("GET /settings", settingsHandler.Show)
	route("POST /settings/api-key", settingsHandler.SaveAPIKey)

	mux.Handle("GET /metrics", met.Handler(log))

	var handler http.Handler = middleware.Logging(middleware.WithLearner(middleware.WithUser(mux)))
	app.Store(&handler)
	startup.CompleteStep(handlers.StepServices)

	// Background cleanup
	go controllers.Run(ctx, time.Minute)
	go cleanupExpiredSessions(ctx, authService, log)

	startup.MarkReady()
	log.Info("server ready", "addr", addr)

	<-ctx.Done()
	log.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(ctx context.Context, authService *service.AuthService, log *logger.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := authService.CleanupExpiredSessions(ctx)
			if err != nil {
				log.Error("error cleaning up expired sessions", "error", err)
				continue
			}
			log.Info("expired sessions cleaned up", "count", n)
		}
	}
}

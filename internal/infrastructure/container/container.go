package container

import (
	"fmt"
	"time"

	"github.com/passportpals/passportpals-backend/internal/clock"
	"github.com/passportpals/passportpals-backend/internal/config"
	"github.com/passportpals/passportpals-backend/internal/delivery/http"
	"github.com/passportpals/passportpals-backend/internal/delivery/http/handler"
	"github.com/passportpals/passportpals-backend/internal/delivery/http/middleware"
	"github.com/passportpals/passportpals-backend/internal/infrastructure/server"
	"github.com/passportpals/passportpals-backend/internal/random"
	"github.com/passportpals/passportpals-backend/internal/repository/memory"
	"github.com/passportpals/passportpals-backend/internal/responder"
	"github.com/passportpals/passportpals-backend/internal/scheduler"
	"github.com/passportpals/passportpals-backend/internal/seed"
	"github.com/passportpals/passportpals-backend/internal/storage"
	"github.com/passportpals/passportpals-backend/internal/usecase/auth"
	"github.com/passportpals/passportpals-backend/internal/usecase/chat"
	"github.com/passportpals/passportpals-backend/internal/usecase/feed"
	"github.com/passportpals/passportpals-backend/internal/usecase/points"
	"github.com/passportpals/passportpals-backend/internal/usecase/profile"
	"github.com/passportpals/passportpals-backend/internal/usecase/review"
	"github.com/passportpals/passportpals-backend/internal/usecase/swipe"
	"github.com/passportpals/passportpals-backend/internal/usecase/trip"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Store     storage.Store
	Server    *server.Server
	Scheduler scheduler.Scheduler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize the key-value store state is mirrored into
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	ns := storage.Namespace(cfg.App.Namespace)

	// Shared ports
	clk := clock.System{}
	rng := random.NewMath()
	sched := scheduler.NewTimers()

	// Simulated counterparty replies; Gemini when a key is configured,
	// keyword matching otherwise
	var resp responder.Responder = responder.NewCanned(rng)
	if cfg.GeminiAPIKey != "" {
		gem, err := responder.NewGemini(cfg.GeminiAPIKey, resp)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		} else {
			resp = gem
		}
	}

	// Initialize repositories
	profiles := seed.NewStore()
	stateRepo := memory.NewStateRepository(store, ns)
	swipeRepo := memory.NewSwipeRepository(store, ns)
	matchRepo := memory.NewMatchRepository(store, ns)
	tripRepo := memory.NewTripRepository(store, ns)
	messageRepo := memory.NewMessageRepository()
	pointsRepo := memory.NewPointsRepository(store, ns)
	reviewRepo := memory.NewReviewRepository()

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		profiles,
		stateRepo,
		swipeRepo,
		matchRepo,
		tripRepo,
		messageRepo,
		pointsRepo,
		reviewRepo,
		sched,
		clk,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMin)*time.Minute,
	)

	profileUseCase := profile.NewProfileUseCase(
		profiles,
		stateRepo,
	)

	feedUseCase := feed.NewFeedUseCase(
		profiles,
		stateRepo,
		swipeRepo,
		matchRepo,
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		profiles,
		stateRepo,
		swipeRepo,
		matchRepo,
		rng,
		clk,
	)

	tripUseCase := trip.NewTripUseCase(
		profiles,
		stateRepo,
		tripRepo,
		matchRepo,
		messageRepo,
		sched,
		rng,
		clk,
	)

	chatUseCase := chat.NewChatUseCase(
		profiles,
		stateRepo,
		matchRepo,
		messageRepo,
		resp,
		sched,
		rng,
		clk,
	)

	pointsUseCase := points.NewPointsUseCase(stateRepo, pointsRepo, clk)

	reviewUseCase := review.NewReviewUseCase(
		stateRepo,
		tripRepo,
		reviewRepo,
		pointsUseCase,
		clk,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	tripHandler := handler.NewTripHandler(tripUseCase)
	messageHandler := handler.NewMessageHandler(chatUseCase)
	pointsHandler := handler.NewPointsHandler(pointsUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		swipeHandler,
		tripHandler,
		messageHandler,
		pointsHandler,
		reviewHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:    cfg,
		Store:     store,
		Server:    srv,
		Scheduler: sched,
	}, nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Type {
	case "file":
		return storage.NewFileStore(cfg.Storage.Path)
	case "redis":
		return storage.NewRedisStore(&cfg.Redis)
	case "postgres":
		return storage.NewPostgresStore(&cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

// Close closes all connections
func (c *Container) Close() error {
	// Drop any pending simulated events
	if c.Scheduler != nil {
		c.Scheduler.CancelAll()
	}

	if closer, ok := c.Store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}

	return nil
}

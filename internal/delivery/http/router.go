package http

import (
	"github.com/gin-gonic/gin"

	"github.com/passportpals/passportpals-backend/internal/delivery/http/handler"
	"github.com/passportpals/passportpals-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	tripHandler    *handler.TripHandler
	messageHandler *handler.MessageHandler
	pointsHandler  *handler.PointsHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	tripHandler *handler.TripHandler,
	messageHandler *handler.MessageHandler,
	pointsHandler *handler.PointsHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		tripHandler:    tripHandler,
		messageHandler: messageHandler,
		pointsHandler:  pointsHandler,
		reviewHandler:  reviewHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/demo", r.authHandler.DemoLogin)
			auth.POST("/onboarding", r.authHandler.Onboarding)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.GET("/:user_id", r.profileHandler.GetProfileByID)
			}

			// Settings routes
			settings := protected.Group("/settings")
			{
				settings.GET("", r.profileHandler.GetSettings)
				settings.PUT("", r.profileHandler.UpdateSettings)
			}

			// Feed routes
			feed := protected.Group("/feed")
			{
				feed.GET("", r.feedHandler.GetStack)
				feed.GET("/filters", r.feedHandler.GetFilters)
				feed.PUT("/filters", r.feedHandler.UpdateFilters)
			}

			// Swipe routes
			protected.POST("/swipe", r.swipeHandler.CreateSwipe)

			// Match and message routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.swipeHandler.GetMatches)
				matches.GET("/:match_id", r.swipeHandler.GetMatch)
				matches.GET("/:match_id/messages", r.messageHandler.ListMessages)
				matches.POST("/:match_id/messages", r.messageHandler.SendMessage)
			}

			// Trip routes
			trips := protected.Group("/trips")
			{
				trips.POST("", r.tripHandler.CreateTrip)
				trips.GET("", r.tripHandler.ListTrips)
				trips.GET("/:trip_id", r.tripHandler.GetTrip)
				trips.PUT("/:trip_id/status", r.tripHandler.UpdateStatus)
				trips.GET("/:trip_id/reviews", r.reviewHandler.ListForTrip)
			}

			// Points routes
			points := protected.Group("/points")
			{
				points.GET("/balance", r.pointsHandler.GetBalance)
				points.GET("/ledger", r.pointsHandler.GetLedger)
				points.POST("/spend", r.pointsHandler.Spend)
			}

			// Review routes
			protected.POST("/reviews", r.reviewHandler.CreateReview)
		}
	}

	return router
}

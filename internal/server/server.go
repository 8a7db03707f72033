package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/lokly/config"
	"github.com/farellandr/lokly/internal/handlers"
	"github.com/farellandr/lokly/internal/middleware"
	"github.com/farellandr/lokly/internal/session"
	"github.com/farellandr/lokly/internal/storage"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}

	store := storage.NewGorm(db)
	if err := storage.Seed(context.Background(), store); err != nil {
		return fmt.Errorf("failed to seed catalog: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := NewRouter(store, session.NewRedisStore(redisClient))

	return r.Run(":" + cfg.Server.Port)
}

func NewRouter(store storage.Storage, sessions session.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.StorageMiddleware(store))
	r.Use(middleware.SessionMiddleware(sessions))

	api := r.Group("/api")
	{
		api.GET("/experiences", handlers.ListExperiences)
		api.GET("/experiences/search", handlers.SearchExperiences)
		api.GET("/experiences/:id", handlers.GetExperience)
		api.GET("/experiences/:id/timeslots", handlers.ListTimeSlots)
		api.GET("/experiences/:id/packages", handlers.ListPackages)

		api.POST("/bookings", handlers.CreateBooking)
		api.GET("/bookings/by-email/:email", handlers.ListBookingsByEmail)
		api.GET("/bookings/:id", handlers.GetBooking)

		api.POST("/auth/signup", handlers.Signup)
		api.POST("/auth/login", handlers.Login)
	}

	protected := r.Group("/api")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/auth/logout", handlers.Logout)
		protected.GET("/auth/me", handlers.Me)
		protected.GET("/my-bookings", handlers.MyBookings)
	}

	return r
}

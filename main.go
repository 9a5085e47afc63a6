package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"gig-marketplace/config"
	"gig-marketplace/handlers"
	"gig-marketplace/middleware"
	"gig-marketplace/models"
	"gig-marketplace/repositories"
	"gig-marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sellerRepo := repositories.NewSellerRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	sellerService := services.NewSellerService(sellerRepo, userRepo)
	gigService := services.NewGigService(gigRepo)
	reviewService := services.NewReviewService(reviewRepo, gigRepo)
	imageStore := services.NewLocalImageStore(getEnv("PUBLIC_URL", "http://localhost:8080"))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, sellerService, imageStore)
	gigHandler := handlers.NewGigHandler(gigService, authService)
	reviewHandler := handlers.NewReviewHandler(reviewService, authService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(rate.Limit(1), 5), authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public discovery; OptionalAuth lets owners see their own
		// inactive listings.
		v1.GET("/gigs", middleware.OptionalAuth(), gigHandler.GetGigs)
		v1.GET("/gigs/:id", middleware.OptionalAuth(), gigHandler.GetGig)
		v1.GET("/gigs/:id/reviews", reviewHandler.GetGigReviews)
		v1.GET("/sellers/:id", userHandler.GetSellerProfile)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.DELETE("/profile", authHandler.DeleteAccount)
			protected.POST("/profile/image", userHandler.UploadProfileImage)

			// Seller lifecycle
			protected.POST("/users/become-seller", userHandler.BecomeSeller)
			protected.PUT("/users/seller-profile", userHandler.UpdateSellerProfile)

			// Gigs
			gigs := protected.Group("/gigs")
			{
				gigs.POST("", gigHandler.CreateGig)
				gigs.PATCH("/:id", gigHandler.UpdateGig)
				gigs.DELETE("/:id", gigHandler.DeleteGig)
				gigs.PUT("/:id/status", gigHandler.ToggleStatus)
			}

			// Reviews
			protected.POST("/reviews", reviewHandler.CreateReview)

			// Admin repairs
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/gigs/:id/recompute-rating", reviewHandler.RecomputeGigRating)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

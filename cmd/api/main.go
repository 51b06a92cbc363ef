package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"carwash/internal/database"
	"carwash/internal/middleware"
	"carwash/internal/modules/auth"
	"carwash/internal/modules/booking"
	"carwash/internal/modules/catalog"
	jwtsvc "carwash/internal/pkg/jwt"
	"carwash/internal/repository"
)

func main() {
	// .env is optional; deployments set real environment variables.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carwash.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 7*24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		api.GET("/bookings/:id/receipt", bookingHandler.Receipt)

		// guest-or-authenticated
		api.POST("/bookings", middleware.OptionalAuth(j), bookingHandler.Create)

		// authenticated
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			protected.GET("/bookings", bookingHandler.ListMine)

			staff := protected.Group("/")
			staff.Use(middleware.StaffOnly())
			{
				staff.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
				staff.POST("/bookings/:id/done", bookingHandler.MarkDone)
			}

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/bookings/all", bookingHandler.ListAll)
				admin.PATCH("/bookings/:id/assign", bookingHandler.Assign)
				admin.PATCH("/bookings/:id/payment", bookingHandler.UpdatePayment)
				catalogHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

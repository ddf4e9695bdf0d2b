package main

import (
	"log"
	"net/http"
	"os"

	"pms/config"
	"pms/jobs"
	"pms/models"
	"pms/routes"
	"pms/services/logger"
	"pms/services/notification"
	"pms/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Tenant{}, &models.User{}, &models.Category{}, &models.RatePlan{},
		&models.Room{}, &models.MeetingHall{}, &models.Reservation{},
		&models.GroupBooking{}, &models.GroupBookingHallReservation{},
		&models.RoomStatusLog{}, &models.AuditLog{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	validator.RegisterCustomValidators()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	outbox := notification.NewOutbox(256, appLogger,
		notification.NewMelodySink(m),
		notification.NewLogSink(appLogger),
	)
	defer outbox.Close()

	if err := jobs.InitCronJobs(c, config.DB, outbox); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, outbox)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

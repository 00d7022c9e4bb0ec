package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"carwash-service/internal/api"
	"carwash-service/internal/config"
	"carwash-service/internal/repository"
	"carwash-service/internal/service"
	"carwash-service/migrations"
)

func connectDB(dsn, dbname string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", dbname)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s: %v", i+1, dbname, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s after retries: %v", dbname, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.Database.DSN(), cfg.Database.Name)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer kafkaWriter.Close()

	carRepo := repository.NewCarRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	recordRepo := repository.NewServiceRecordRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	secret := []byte(cfg.SessionSecret)
	sessions := service.NewRedisSessionStore(rdb)

	carService := service.NewCarService(carRepo, recordRepo, paymentRepo)
	packageService := service.NewPackageService(packageRepo, rdb)
	recordService := service.NewRecordService(recordRepo, kafkaWriter)
	paymentService := service.NewPaymentService(paymentRepo, kafkaWriter)
	reportService := service.NewReportService(reportRepo, carRepo, recordRepo, paymentRepo)
	authService := service.NewAuthService(userRepo, sessions, secret)

	if err := packageService.PreWarmCache(context.Background()); err != nil {
		log.Printf("Package cache pre-warm failed: %v", err)
	}

	carHandler := api.NewCarHandler(carService)
	packageHandler := api.NewPackageHandler(packageService)
	recordHandler := api.NewRecordHandler(recordService)
	paymentHandler := api.NewPaymentHandler(paymentService)
	reportHandler := api.NewReportHandler(reportService)
	authHandler := api.NewAuthHandler(authService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"message": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/check", authHandler.Check)
	auth.POST("/logout", authHandler.Logout)

	sessionAuth := api.SessionAuth(authService, secret)

	cars := e.Group("/api/cars", sessionAuth...)
	cars.GET("", carHandler.GetCars)
	cars.POST("", carHandler.CreateCar)
	cars.GET("/:plateNumber", carHandler.GetCar)
	cars.PUT("/:plateNumber", carHandler.UpdateCar)
	cars.DELETE("/:plateNumber", carHandler.DeleteCar)
	cars.GET("/:plateNumber/details", carHandler.GetCarDetails)

	packages := e.Group("/api/packages", sessionAuth...)
	packages.GET("", packageHandler.GetPackages)
	packages.POST("", packageHandler.CreatePackage)
	packages.GET("/:id", packageHandler.GetPackage)
	packages.PUT("/:id", packageHandler.UpdatePackage)
	packages.DELETE("/:id", packageHandler.DeletePackage)

	records := e.Group("/api/services", sessionAuth...)
	records.GET("", recordHandler.GetRecords)
	records.POST("", recordHandler.CreateRecord)
	records.GET("/by-car/:plateNumber", recordHandler.GetRecordsByCar)
	records.GET("/:id", recordHandler.GetRecord)
	records.PUT("/:id", recordHandler.UpdateRecord)
	records.DELETE("/:id", recordHandler.DeleteRecord)

	payments := e.Group("/api/payments", sessionAuth...)
	payments.GET("", paymentHandler.GetPayments)
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("/by-record/:id", paymentHandler.GetPaymentsByRecord)
	payments.GET("/by-car/:plateNumber", paymentHandler.GetPaymentsByCar)
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.PUT("/:id", paymentHandler.UpdatePayment)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	reports := e.Group("/api/reports", sessionAuth...)
	reports.GET("/daily/:date", reportHandler.DailyReport)
	reports.GET("/payments", reportHandler.PaymentsReport)
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/comprehensive", reportHandler.ComprehensiveReport)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "carwash-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}

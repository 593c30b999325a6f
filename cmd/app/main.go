package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"spotserve/cmd"
	adapterhttp "spotserve/internal/adapters/in/http"
	"spotserve/internal/adapters/out/postgres/catalogrepo"
	"spotserve/internal/adapters/out/postgres/jobrepo"
	"spotserve/internal/adapters/out/postgres/mechanicrepo"
	"spotserve/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)

	e := newWebServer(&app, configs)
	go func() {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	// Fatal exits skip deferred calls, so shutdown runs off the signal
	// handler instead.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort:          envVariable("HTTP_PORT"),
		DBHost:            envVariable("DB_HOST"),
		DBPort:            envVariable("DB_PORT"),
		DBUser:            envVariable("DB_USER"),
		DBPassword:        envVariable("DB_PASSWORD"),
		DBName:            envVariable("DB_NAME"),
		DBSslMode:         envVariable("DB_SSLMODE"),
		JWTSecret:         envVariable("JWT_SECRET"),
		PaymentGatewayURL: os.Getenv("PAYMENT_GATEWAY_URL"),
		PaymentGatewayKey: os.Getenv("PAYMENT_GATEWAY_KEY"),
		DefaultBasePrice:  500.0,
	}

	if raw := os.Getenv("DEFAULT_BASE_PRICE"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("Invalid DEFAULT_BASE_PRICE %q: %v", raw, err)
		}
		config.DefaultBasePrice = price
	}

	return config
}

func envVariable(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&jobrepo.JobDTO{},
		&catalogrepo.ServiceDTO{},
		&mechanicrepo.MechanicDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.JobRepository(),
		app.PaymentProvider(),
		app.CreateConfirmPaymentCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	return jobManager
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config) *echo.Echo {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateCreateJobCommandHandler(),
		app.CreateCancelJobCommandHandler(),
		app.CreateAcceptJobCommandHandler(),
		app.CreateStartJobCommandHandler(),
		app.CreateVerifyOtpCommandHandler(),
		app.CreateRequestPaymentCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateCompleteJobCommandHandler(),
		app.CreateGetCustomerJobsQueryHandler(),
		app.CreateGetMechanicJobsQueryHandler(),
		app.CreateGetNearbyJobsQueryHandler(),
		app.CreateGetJobOtpQueryHandler(),
		app.CreateGetReceiptQueryHandler(),
		app.MechanicDirectory(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	return e
}

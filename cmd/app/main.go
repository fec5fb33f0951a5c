package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/cmd"
	inhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/cancellationrepo"
	"dispatch/internal/adapters/out/postgres/driverrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&driverrepo.DriverDTO{},
		&cancellationrepo.CancellationDTO{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		OrderServiceURL:        goDotEnvVariable("ORDER_SERVICE_URL"),
		AuthServiceURL:         goDotEnvVariable("AUTH_SERVICE_URL"),
		NotificationServiceURL: goDotEnvVariable("NOTIFICATION_SERVICE_URL"),
		NotificationAPIKey:     goDotEnvVariable("NOTIFICATION_API_KEY"),

		PaymentSecret: goDotEnvVariable("PAYMENT_SUCCESS_SECRET"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := inhttp.NewServer(app.CreateHTTPHandlers(), configs.PaymentSecret)
	auth := inhttp.NewAuthMiddleware([]byte(configs.JWTSecret))
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

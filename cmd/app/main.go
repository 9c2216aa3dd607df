package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"freightbroker/cmd"
	httpadapter "freightbroker/internal/adapters/in/http"
	"freightbroker/internal/adapters/out/postgres"
	"freightbroker/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateRecalculatePriceFloorsCommandHandler(),
		app.CreateRepairAgreedPricesCommandHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		WithdrawalFeeCents: goDotEnvVariable("WITHDRAWAL_FEE_CENTS"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateFreightCommandHandler(),
		app.CreateSubmitProposalCommandHandler(),
		app.CreateAcceptProposalCommandHandler(),
		app.CreateTransitionAssignmentCommandHandler(),
		app.CreateWithdrawAssignmentCommandHandler(),
		app.CreateConfirmPaymentSentCommandHandler(),
		app.CreateConfirmPaymentReceivedCommandHandler(),
		app.CreateGetEffectiveStatusQueryHandler(),
		app.CreateGetFreightQuoteQueryHandler(),
		app.CreateGetOpenFreightsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

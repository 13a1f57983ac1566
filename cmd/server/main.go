package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun/migrate"

	"github.com/stablepay/stablepay.go/db"
	"github.com/stablepay/stablepay.go/db/migrations"
	"github.com/stablepay/stablepay.go/docs"
	"github.com/stablepay/stablepay.go/lib/logging"
	"github.com/stablepay/stablepay.go/lib/service"
	"github.com/stablepay/stablepay.go/lib/transport"
	"github.com/stablepay/stablepay.go/rabbitmq"
	"github.com/stablepay/stablepay.go/usdc"
)

// @title        Stablepay
// @version      1.0.0
// @description  USDC payment links reconciled against on-chain transfer events.

// @BasePath  /
// @schemes   https http
func main() {

	c := &service.Config{}

	// Load configruation from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configrued log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"404"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No rabbitmq features will be available in this case.
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		rabbitmqClient, err = rabbitmq.Dial(c.RabbitMQUri,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithInvoiceExchange(c.RabbitMQInvoiceExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	svc := &service.PaylinkService{
		Config:         c,
		DB:             dbConn,
		Logger:         logger,
		InvoicePubSub:  service.NewPubsub(),
		RabbitMQClient: rabbitmqClient,
	}

	reconciler := usdc.NewReconciler(svc, c.TokenContract,
		usdc.WithLogger(logger),
		usdc.WithOnInvoicePaid(svc.PublishPaidInvoice),
	)
	logger.Infof("Reconciling invoices against token contract %s on %s", c.TokenContract, c.ChainName)

	//init echo server
	e := transport.InitEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("stablepay.go")))
	}

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for requests that create invoices
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	transport.RegisterEndpoints(svc, e, reconciler, strictRateLimitMiddleware, logMw)

	//Swagger API spec
	docs.SwaggerInfo.Host = c.Host
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var backgroundWg sync.WaitGroup
	backGroundCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	//Start webhook subscription
	if svc.Config.WebhookUrl != "" {
		backgroundWg.Add(1)
		go func() {
			svc.StartWebhookSubscription(backGroundCtx, svc.Config.WebhookUrl)
			svc.Logger.Info("Webhook routine done")
			backgroundWg.Done()
		}()
	}
	//Start rabbit publisher
	if svc.RabbitMQClient != nil {
		backgroundWg.Add(1)
		go func() {
			err = svc.RabbitMQClient.StartPublishInvoices(backGroundCtx,
				svc.SubscribePaidInvoices,
				svc.EncodeInvoice,
			)
			if err != nil {
				svc.Logger.Error(err)
				sentry.CaptureException(err)
			}

			svc.Logger.Info("Rabbit invoice publisher done")
			backgroundWg.Done()
		}()
	}

	//Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	//Wait for graceful shutdown of background routines
	backgroundWg.Wait()
	svc.Logger.Info("Stablepay exiting gracefully. Goodbye.")
}

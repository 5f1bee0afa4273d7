package routes

import (
	"context"
	"log"
	"strconv"

	_ "garage_workflow/docs"
	"garage_workflow/internal/adapter/http/handlers"
	"garage_workflow/internal/adapter/http/middleware"
	"garage_workflow/internal/adapter/persistence/repository"
	"garage_workflow/internal/config"
	"garage_workflow/internal/infrastructure/cache"
	"garage_workflow/internal/infrastructure/database"
	"garage_workflow/internal/infrastructure/messaging"
	"garage_workflow/internal/infrastructure/payments"
	"garage_workflow/internal/usecase"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Handlers groups everything the route table needs.
type Handlers struct {
	Jobs      *handlers.JobHandler
	Tasks     *handlers.TaskHandler
	Estimates *handlers.EstimateHandler
	Invoices  *handlers.InvoiceHandler
	Inventory *handlers.InventoryHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h, cleanup := buildHandlers(cfg)
	defer cleanup()
	Register(router, h)

	err := router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// Register mounts the /v1 API on r.
func Register(r *gin.Engine, h Handlers) {
	v1 := r.Group("/v1")
	addPingRoutes(v1)

	// Every business route is tenant scoped.
	scoped := v1.Group("", middleware.Tenant())
	addJobRoutes(scoped, h.Jobs, h.Tasks, h.Estimates)
	addTaskRoutes(scoped, h.Tasks)
	addBillingRoutes(scoped, h.Estimates, h.Invoices)
	addInventoryRoutes(scoped, h.Inventory)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

// buildHandlers wires storage, infrastructure and usecases. Redis and RabbitMQ degrade gracefully: without Redis
// numbering fails per request, without RabbitMQ notifications are skipped.
func buildHandlers(cfg *config.Config) (Handlers, func()) {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx, cfg)
	tables := cfg.DynamoDB.Tables

	jobRepo := repository.NewJobDynamoRepository(ddb, tables.Jobs)
	taskRepo := repository.NewTaskDynamoRepository(ddb, tables.Tasks)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb, tables.Estimates)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, tables.Invoices, tables.PaymentTransactions)
	txnRepo := repository.NewPaymentTransactionDynamoRepository(ddb, tables.PaymentTransactions)
	inventoryRepo := repository.NewInventoryDynamoRepository(ddb, tables.InventoryItems, tables.Allocations)

	redisClient, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("[routes] redis unavailable, sequences will fail until it is reachable err=%v", err)
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	}
	sequence := cache.NewRedisSequence(redisClient)
	settings := cache.NewNotificationSettingsStore(redisClient)

	var notifier interfaces.INotificationPort
	var rabbit *messaging.RabbitMQConnection
	if rabbit, err = messaging.ConnectRabbitMQ(cfg.RabbitMQ.URL); err != nil {
		log.Printf("[routes] rabbitmq unavailable, notifications disabled err=%v", err)
		rabbit = nil
	} else if publisher, perr := messaging.NewNotificationPublisher(rabbit, cfg.RabbitMQ.Queue); perr != nil {
		log.Printf("[routes] notification queue setup failed err=%v", perr)
	} else {
		notifier = publisher
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	allocator := usecase.NewInventoryAllocatorUseCase(inventoryRepo)
	taskLedger := usecase.NewTaskLedgerUseCase(taskRepo, jobRepo, allocator)
	estimates := usecase.NewEstimateUseCase(estimateRepo, taskRepo, jobRepo)
	invoices := usecase.NewInvoiceSyncUseCase(invoiceRepo, estimateRepo, sequence, cfg.InvoiceGracePeriod())
	paymentUseCase := usecase.NewPaymentUseCase(invoiceRepo, txnRepo, paymentGateway)
	jobs := usecase.NewJobUseCase(jobRepo, invoiceRepo, taskLedger, sequence)
	lifecycle := usecase.NewJobLifecycleEngine(jobRepo, estimates, invoices, taskLedger, notifier, settings)

	h := Handlers{
		Jobs:      handlers.NewJobHandler(jobs, lifecycle),
		Tasks:     handlers.NewTaskHandler(taskLedger),
		Estimates: handlers.NewEstimateHandler(estimates, invoices),
		Invoices:  handlers.NewInvoiceHandler(invoices, paymentUseCase),
		Inventory: handlers.NewInventoryHandler(allocator),
	}

	cleanup := func() {
		if rabbit != nil {
			_ = rabbit.Close()
		}
		if err := redisClient.Close(); err != nil {
			log.Printf("[routes] redis close failed err=%v", err)
		}
	}
	return h, cleanup
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

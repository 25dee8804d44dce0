package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "bakusam_topup/docs" // This will be auto-generated
	"bakusam_topup/internal/adapter/http/handlers"
	"bakusam_topup/internal/adapter/persistence/memory"
	repository2 "bakusam_topup/internal/adapter/persistence/repository"
	"bakusam_topup/internal/infrastructure/database"
	"bakusam_topup/internal/infrastructure/notify"
	"bakusam_topup/internal/infrastructure/payments"
	"bakusam_topup/internal/metrics"
	"bakusam_topup/internal/ratelimit"
	"bakusam_topup/internal/usecase"
	"bakusam_topup/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	driverRepo := repository2.NewDriverDynamoRepository(ddb)
	txRepo := repository2.NewTransactionDynamoRepository(ddb)
	orderStore := memory.NewPendingOrderStore()

	var paymentGateway interfaces.IPaymentGateway
	midtrans, err := payments.NewMidtransGateway(os.Getenv("MIDTRANS_SERVER_KEY"))
	if err != nil {
		log.Printf("Midtrans gateway not configured: %v", err)
	} else {
		paymentGateway = midtrans
	}

	var notifier interfaces.INotifier
	whatsapp, err := notify.NewWhatsAppNotifier(os.Getenv("WHATSAPP_API_URL"))
	if err != nil {
		log.Printf("WhatsApp notifier not configured, falling back to log output: %v", err)
		notifier = notify.LogNotifier{}
	} else {
		notifier = whatsapp
	}

	limiter := ratelimit.NewLimiter(ratelimit.DefaultWindow, ratelimit.DefaultLimit)
	limiter.StartSweep(context.Background(), time.Minute)

	topupUseCase := usecase.NewTopupUseCase(orderStore, driverRepo, paymentGateway, txRepo, notifier, limiter, ioTimeoutFromEnv())
	balanceUseCase := usecase.NewBalanceUseCase(driverRepo, txRepo, ioTimeoutFromEnv())

	messageHandler := handlers.NewMessageHandler(topupUseCase, balanceUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentGateway, topupUseCase)
	driverHandler := handlers.NewDriverHandler(balanceUseCase)

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, orderStore)
	addTopupRoutes(v1, messageHandler, webhookHandler, driverHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func ioTimeoutFromEnv() time.Duration {
	if v := os.Getenv("IO_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[routes] invalid IO_TIMEOUT %q, using default", v)
	}
	return 10 * time.Second
}

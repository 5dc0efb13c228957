package routes

import (
	"log"
	"os"
	"strconv"

	_ "payment_service/docs" // This will be auto-generated
	"payment_service/internal/adapter/http/handlers"
	"payment_service/internal/adapter/persistence/repository"
	"payment_service/internal/infrastructure/database"
	"payment_service/internal/infrastructure/orders"
	"payment_service/internal/infrastructure/payments"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	var orderNotifier interfaces.IOrderNotifier
	notifier, err := orders.NewOrderServiceNotifier(os.Getenv("ORDER_SERVICE_URL"))
	if err != nil {
		log.Printf("Order-service notifier not configured: %v", err)
	} else {
		orderNotifier = notifier
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, checkoutGateway, orderNotifier, checkoutURLsFromEnv())
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

// checkoutURLsFromEnv builds the processor redirect targets. The
// {CHECKOUT_SESSION_ID} placeholder is substituted by the processor at
// redirect time.
func checkoutURLsFromEnv() usecase.CheckoutURLs {
	frontend := getenvDefault("FRONTEND_URL", "http://localhost:3000")
	return usecase.CheckoutURLs{
		SuccessURL: frontend + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  frontend + "/payment-cancel?session_id={CHECKOUT_SESSION_ID}",
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

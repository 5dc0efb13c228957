package routes

import (
	"payment_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/checkout-session", paymentHandler.CreateCheckoutSession)
		payments.POST("/success", paymentHandler.HandleSuccess)
		payments.POST("/cancel", paymentHandler.HandleCancel)
		payments.POST("/verify-session", paymentHandler.VerifySession)
		payments.GET("/order/:order_id", paymentHandler.GetPaymentByOrder)
	}
}

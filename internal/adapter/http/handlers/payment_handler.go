package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "payment_service/internal/adapter/http/dto/request"
	response "payment_service/internal/adapter/http/dto/response"
	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"
	"payment_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingSessionID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing session_id", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for checkout payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckoutSession opens a hosted checkout session for an order.
//
// @Summary  Create checkout session
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateCheckoutSessionRequest true "checkout session input"
// @Success  201 {object} response.CheckoutSessionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /payments/checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create start order_id=%d", payload.OrderID)

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), payload.OrderID, payload.Amount, payload.Currency)
	if err != nil {
		log.Printf("[checkout][handler] create failed order_id=%d err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success order_id=%d session_id=%s", payload.OrderID, session.ID)

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// HandleSuccess reconciles a success redirect callback.
//
// @Summary  Confirm successful payment
// @Tags     payments
// @Produce  json
// @Param    session_id query string true "processor session id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/success [post]
func (h *PaymentHandler) HandleSuccess(c *gin.Context) {
	h.confirm(c, "success", h.usecase.ConfirmSuccess)
}

// HandleCancel reconciles a cancel redirect callback.
//
// @Summary  Confirm cancelled payment
// @Tags     payments
// @Produce  json
// @Param    session_id query string true "processor session id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/cancel [post]
func (h *PaymentHandler) HandleCancel(c *gin.Context) {
	h.confirm(c, "cancel", h.usecase.ConfirmCancel)
}

// VerifySession lets the frontend re-check a session after the redirect; it
// runs the same success-confirmation path.
//
// @Summary  Verify checkout session
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payload body request.VerifySessionRequest true "session to verify"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/verify-session [post]
func (h *PaymentHandler) VerifySession(c *gin.Context) {
	var payload request.VerifySessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] verify start session_id=%s", payload.SessionID)

	p, err := h.usecase.ConfirmSuccess(c.Request.Context(), payload.SessionID)
	if err != nil {
		log.Printf("[checkout][handler] verify failed session_id=%s err=%v", payload.SessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentByOrder returns the payment recorded for an order.
//
// @Summary  Get payment by order
// @Tags     payments
// @Produce  json
// @Param    order_id path int true "order id"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/order/{order_id} [get]
func (h *PaymentHandler) GetPaymentByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] get-by-order failed order_id=%d err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) confirm(
	c *gin.Context,
	action string,
	confirmFn func(ctx context.Context, sessionID string) (entities.Payment, error),
) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(errMissingSessionID.HTTPStatus, errMissingSessionID.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] %s start session_id=%s", action, sessionID)

	p, err := confirmFn(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[checkout][handler] %s failed session_id=%s err=%v", action, sessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] %s success session_id=%s order_id=%d status=%s", action, sessionID, p.OrderID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

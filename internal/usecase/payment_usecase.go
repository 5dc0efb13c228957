package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidOrderID        = errors.New("invalid order_id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrInvalidSessionID      = errors.New("invalid session_id")
	ErrCheckoutGatewayFailed = errors.New("checkout gateway failed")
)

// minorUnitsFactor converts major currency units to the processor's minor
// units: multiply by 100 and truncate toward zero.
var minorUnitsFactor = decimal.NewFromInt(100)

// CheckoutURLs are the redirect targets handed to the processor when a
// session is created. Each may carry the processor's session-id placeholder.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

// IPaymentUseCase encapsulates the payment lifecycle:
//   - open a hosted checkout session and record the PENDING payment
//   - reconcile the success or cancel callback into a terminal status
//   - expose the payment for an order
//
// Reconciliation is idempotent: confirming an already-terminal payment is a
// no-op success that returns the current record and fires no notification.

type IPaymentUseCase interface {
	CreateCheckoutSession(ctx context.Context, orderID int64, amount decimal.Decimal, currency string) (interfaces.CheckoutSession, error)
	ConfirmSuccess(ctx context.Context, sessionID string) (entities.Payment, error)
	ConfirmCancel(ctx context.Context, sessionID string) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	gateway  interfaces.ICheckoutGateway
	notifier interfaces.IOrderNotifier
	urls     CheckoutURLs
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.ICheckoutGateway, notifier interfaces.IOrderNotifier, urls CheckoutURLs) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, notifier: notifier, urls: urls}
}

func (u *PaymentUseCase) CreateCheckoutSession(ctx context.Context, orderID int64, amount decimal.Decimal, currency string) (interfaces.CheckoutSession, error) {
	log.Printf("[checkout][usecase] create start order_id=%d amount=%s currency=%q", orderID, amount, currency)
	if orderID <= 0 {
		return interfaces.CheckoutSession{}, ErrInvalidOrderID
	}
	if !amount.IsPositive() {
		return interfaces.CheckoutSession{}, ErrInvalidAmount
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return interfaces.CheckoutSession{}, ErrInvalidCurrency
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured order_id=%d", orderID)
		return interfaces.CheckoutSession{}, errors.New("checkout gateway not configured")
	}

	minorUnits := amount.Mul(minorUnitsFactor).IntPart()

	session, err := u.gateway.CreateSession(ctx, interfaces.CreateSessionParams{
		OrderID:          orderID,
		AmountMinorUnits: minorUnits,
		Currency:         currency,
		Title:            fmt.Sprintf("Order #%d", orderID),
		Description:      "Payment for order",
		SuccessURL:       u.urls.SuccessURL,
		CancelURL:        u.urls.CancelURL,
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed order_id=%d err=%v", orderID, err)
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: %v", ErrCheckoutGatewayFailed, err)
	}
	log.Printf("[checkout][usecase] session created order_id=%d session_id=%s", orderID, session.ID)

	// The session already exists upstream; a failed save leaves it orphaned
	// and the error is surfaced as-is, no compensating cancellation.
	p := entities.Payment{
		SessionID: session.ID,
		OrderID:   orderID,
		Amount:    amount,
		Currency:  currency,
		Status:    entities.PaymentStatusPending,
	}
	if _, err := u.repo.Save(ctx, p); err != nil {
		log.Printf("[checkout][usecase] save failed order_id=%d session_id=%s err=%v", orderID, session.ID, err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[checkout][usecase] create success order_id=%d session_id=%s", orderID, session.ID)

	return interfaces.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (u *PaymentUseCase) ConfirmSuccess(ctx context.Context, sessionID string) (entities.Payment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Payment{}, ErrInvalidSessionID
	}
	log.Printf("[checkout][usecase] confirm-success start session_id=%s", sessionID)

	p, err := u.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		log.Printf("[checkout][usecase] confirm-success not-found session_id=%s", sessionID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status.IsTerminal() {
		log.Printf("[checkout][usecase] confirm-success no-op session_id=%s status=%s", sessionID, p.Status)
		return p, nil
	}

	session, err := u.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		log.Printf("[checkout][usecase] gateway retrieve failed session_id=%s err=%v", sessionID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrCheckoutGatewayFailed, err)
	}

	p.Status = entities.PaymentStatusCompleted
	p.PaymentIntentID = session.PaymentIntentID

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] save failed session_id=%s err=%v", sessionID, err)
		return entities.Payment{}, err
	}

	u.notifyOrder(ctx, saved.OrderID, interfaces.OrderPaymentStatusPaid)

	log.Printf("[checkout][usecase] confirm-success done session_id=%s order_id=%d", sessionID, saved.OrderID)
	return saved, nil
}

func (u *PaymentUseCase) ConfirmCancel(ctx context.Context, sessionID string) (entities.Payment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Payment{}, ErrInvalidSessionID
	}
	log.Printf("[checkout][usecase] confirm-cancel start session_id=%s", sessionID)

	p, err := u.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		log.Printf("[checkout][usecase] confirm-cancel not-found session_id=%s", sessionID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status.IsTerminal() {
		log.Printf("[checkout][usecase] confirm-cancel no-op session_id=%s status=%s", sessionID, p.Status)
		return p, nil
	}

	// No processor-side call is needed to cancel; the session simply expires.
	p.Status = entities.PaymentStatusCancelled

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] save failed session_id=%s err=%v", sessionID, err)
		return entities.Payment{}, err
	}

	u.notifyOrder(ctx, saved.OrderID, interfaces.OrderPaymentStatusCancelled)

	log.Printf("[checkout][usecase] confirm-cancel done session_id=%s order_id=%d", sessionID, saved.OrderID)
	return saved, nil
}

func (u *PaymentUseCase) GetByOrderID(ctx context.Context, orderID int64) (entities.Payment, error) {
	if orderID <= 0 {
		return entities.Payment{}, ErrInvalidOrderID
	}

	p, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// notifyOrder reports the outcome to the order-service. The payment state is
// already committed at this point, so a notifier failure is logged and
// swallowed; it must never surface as an operation failure.
func (u *PaymentUseCase) notifyOrder(ctx context.Context, orderID int64, status interfaces.OrderPaymentStatus) {
	if u.notifier == nil {
		log.Printf("[checkout][usecase] notifier not configured order_id=%d status=%s", orderID, status)
		return
	}
	if err := u.notifier.NotifyPaymentStatus(ctx, orderID, status); err != nil {
		log.Printf("[checkout][usecase] order notification failed order_id=%d status=%s err=%v", orderID, status, err)
	}
}

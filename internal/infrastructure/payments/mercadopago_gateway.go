package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payment_service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements ICheckoutGateway on Checkout Pro.
//
// A checkout preference is the hosted session: its id is the session id and
// its init_point is the redirect URL. Retrieval resolves the collected
// payment for the preference, whose id plays the payment-intent role.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isCheckoutGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, params interfaces.CreateSessionParams) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock_session_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[checkout][gateway] mock create success session_id=%s order_id=%d", id, params.OrderID)
		return interfaces.CheckoutSession{ID: id, URL: "https://checkout.local/" + id}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] create start order_id=%d amount_minor=%d currency=%s", params.OrderID, params.AmountMinorUnits, params.Currency)

	// Built as a raw body and unmarshalled into the SDK request: the wire
	// names are the stable part of the preference schema.
	body := map[string]any{
		"items": []map[string]any{
			{
				"title":       params.Title,
				"description": params.Description,
				"quantity":    1,
				"unit_price":  float64(params.AmountMinorUnits) / 100,
				"currency_id": params.Currency,
			},
		},
		"back_urls": map[string]any{
			"success": params.SuccessURL,
			"failure": params.CancelURL,
		},
		"external_reference": strconv.FormatInt(params.OrderID, 10),
		"metadata":           map[string]any{"order_id": params.OrderID},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	var req preference.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[checkout][gateway] request unmarshal failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed order_id=%d err=%v", params.OrderID, err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[checkout][gateway] create success session_id=%s order_id=%d", resp.ID, params.OrderID)

	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) RetrieveSession(ctx context.Context, sessionID string) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		intent := "mock_intent_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[checkout][gateway] mock retrieve success session_id=%s payment_intent_id=%s", sessionID, intent)
		return interfaces.CheckoutSession{ID: sessionID, PaymentIntentID: intent}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] retrieve start session_id=%s", sessionID)

	pref, err := g.preferences.Get(ctx, sessionID)
	if err != nil {
		log.Printf("[checkout][gateway] sdk get failed session_id=%s err=%v", sessionID, err)
		return interfaces.CheckoutSession{}, err
	}

	res, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"preference_id": pref.ID},
	})
	if err != nil {
		log.Printf("[checkout][gateway] sdk search failed session_id=%s err=%v", sessionID, err)
		return interfaces.CheckoutSession{}, err
	}

	// Prefer the approved payment; fall back to the last one seen so the
	// caller still gets a reference while the charge settles.
	session := interfaces.CheckoutSession{ID: pref.ID}
	for _, p := range res.Results {
		session.PaymentIntentID = fmt.Sprintf("%d", p.ID)
		if p.Status == "approved" {
			break
		}
	}
	log.Printf("[checkout][gateway] retrieve success session_id=%s payment_intent_id=%s", sessionID, session.PaymentIntentID)

	return session, nil
}

func isCheckoutGatewayMockEnabled() bool {
	for _, key := range []string{"CHECKOUT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

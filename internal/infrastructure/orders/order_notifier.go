package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"payment_service/internal/usecase/interfaces"
)

var ErrMissingOrderServiceURL = errors.New("missing ORDER_SERVICE_URL")

const notifyTimeout = 10 * time.Second

// OrderServiceNotifier reports payment outcomes to the order-service over
// HTTP: PATCH {base}/api/orders/{orderId}/payment-status with the status as a
// JSON string body.

type OrderServiceNotifier struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IOrderNotifier = (*OrderServiceNotifier)(nil)

func NewOrderServiceNotifier(baseURL string) (*OrderServiceNotifier, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[checkout][notifier] missing ORDER_SERVICE_URL")
		return nil, ErrMissingOrderServiceURL
	}
	return &OrderServiceNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: notifyTimeout},
	}, nil
}

func (n *OrderServiceNotifier) NotifyPaymentStatus(ctx context.Context, orderID int64, status interfaces.OrderPaymentStatus) error {
	url := fmt.Sprintf("%s/api/orders/%d/payment-status", n.baseURL, orderID)
	log.Printf("[checkout][notifier] notify start order_id=%d status=%s", orderID, status)

	body, err := json.Marshal(string(status))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[checkout][notifier] notify failed order_id=%d status=%s err=%v", orderID, status, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[checkout][notifier] notify rejected order_id=%d status=%s http_status=%d", orderID, status, resp.StatusCode)
		return fmt.Errorf("order-service returned status %d", resp.StatusCode)
	}

	log.Printf("[checkout][notifier] notify success order_id=%d status=%s", orderID, status)
	return nil
}

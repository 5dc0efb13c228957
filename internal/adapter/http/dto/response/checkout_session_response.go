package response

import "payment_service/internal/usecase/interfaces"

type CheckoutSessionResponse struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
}

func FromCheckoutSession(s interfaces.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		SessionID:  s.ID,
		SessionURL: s.URL,
	}
}

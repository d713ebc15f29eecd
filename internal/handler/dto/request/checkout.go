package request

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

package models

// Shapes of the third-party checkout widget the web client constructs.
// Declarative only; the widget itself lives outside this service.

// CheckoutOptions is the constructor payload for the checkout widget.
type CheckoutOptions struct {
	Key         string           `json:"key"`
	Amount      int64            `json:"amount"` // smallest currency unit
	Currency    string           `json:"currency"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	OrderID     string           `json:"order_id"`
	Prefill     *CheckoutPrefill `json:"prefill,omitempty"`
	Theme       *CheckoutTheme   `json:"theme,omitempty"`

	// Handler is invoked by the widget after a completed payment.
	Handler func(CheckoutResponse) `json:"-"`
}

// CheckoutPrefill pre-populates the payer's details in the widget.
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutTheme customizes the widget's appearance.
type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutResponse is what the widget hands to the completion handler.
type CheckoutResponse struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CheckoutWidget is the surface the widget object exposes once constructed.
type CheckoutWidget interface {
	Open()
	Close()
}

package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON           = "INVALID_JSON"
	ErrCodeSessionNotFound       = "SESSION_NOT_FOUND"
	ErrCodeProductNotFound       = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidCategory       = "INVALID_CATEGORY"
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodePaymentMethodRequired = "PAYMENT_METHOD_REQUIRED"
	ErrCodeInvalidPaymentMethod  = "INVALID_PAYMENT_METHOD"
	ErrCodeInvalidTransition     = "INVALID_TRANSITION"
	ErrCodeCheckoutBusy          = "CHECKOUT_BUSY"
	ErrCodePaymentFailed         = "PAYMENT_FAILED"
	ErrCodeEmptyMessage          = "EMPTY_MESSAGE"
	ErrCodeStylistBusy           = "STYLIST_BUSY"
	ErrCodeUnauthorised          = "UNAUTHORIZED"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// DomainError is an error carrying a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrSessionNotFound       = NewDomainError(ErrCodeSessionNotFound, "Session not found")
	ErrProductNotFound       = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidCategory       = NewDomainError(ErrCodeInvalidCategory, "Unknown product category")
	ErrEmptyCart             = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrPaymentMethodRequired = NewDomainError(ErrCodePaymentMethodRequired, "A payment method must be selected")
	ErrInvalidPaymentMethod  = NewDomainError(ErrCodeInvalidPaymentMethod, "Payment method must be upi, card or cod")
	ErrInvalidTransition     = NewDomainError(ErrCodeInvalidTransition, "Transition not permitted from the current checkout step")
	ErrCheckoutBusy          = NewDomainError(ErrCodeCheckoutBusy, "A payment is already being processed")
	ErrEmptyMessage          = NewDomainError(ErrCodeEmptyMessage, "Message must not be empty")
	ErrStylistBusy           = NewDomainError(ErrCodeStylistBusy, "A stylist request is already in flight")
)

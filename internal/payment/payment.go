// Package payment defines the payment authorisation capability consumed
// by checkout.
package payment

import (
	"context"
	"time"
)

// Error codes for failed authorisations.
const (
	ErrCodeDeclined = "DECLINED"
	ErrCodeTimeout  = "TIMEOUT"
	ErrCodeNetwork  = "NETWORK"
)

// Error is a failed payment authorisation.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Common authorisation errors.
var (
	ErrDeclined = &Error{Code: ErrCodeDeclined, Message: "payment declined by the issuer"}
	ErrTimeout  = &Error{Code: ErrCodeTimeout, Message: "payment authorisation timed out"}
	ErrNetwork  = &Error{Code: ErrCodeNetwork, Message: "payment network unreachable"}
)

// Request describes the payment to authorise.
type Request struct {
	Amount float64
	Method string
}

// Receipt is proof of a successful authorisation.
type Receipt struct {
	ID           string
	Amount       float64
	Method       string
	AuthorisedAt time.Time
}

// Gateway authorises payments. Implementations must honour ctx
// cancellation and report failures as *Error so checkout can distinguish
// declined, timeout and network outcomes.
type Gateway interface {
	Authorize(ctx context.Context, req Request) (*Receipt, error)
}

// Package checkout implements the linear checkout state machine that
// turns a cart into a confirmed order.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"ethnic-elite/internal/cart"
	"ethnic-elite/internal/ledger"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/payment"

	"github.com/rs/zerolog"
)

// Checkout steps. Shipping, Payment and Review form the linear wizard;
// Complete and Failed are terminal and retryable respectively.
const (
	StepShipping = "shipping"
	StepPayment  = "payment"
	StepReview   = "review"
	StepComplete = "complete"
	StepFailed   = "failed"
)

// orderDateFormat renders order dates the way the storefront displays
// them, e.g. "2 September 2026".
const orderDateFormat = "2 January 2006"

// Flow is one shopper's checkout state machine. A single boolean
// processing flag provides mutual exclusion for the confirmation step:
// only one authorisation may be in flight, and every other mutation is
// rejected while it runs.
type Flow struct {
	mu         sync.Mutex
	step       string
	address    model.Address
	method     string
	processing bool
	failure    *payment.Error
	completed  *model.Order

	cart    *cart.Cart
	ledger  *ledger.Ledger
	ids     ledger.Generator
	gateway payment.Gateway
	logger  zerolog.Logger
}

// View is the externally visible checkout state.
type View struct {
	Step          string        `json:"step"`
	Address       model.Address `json:"address"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Processing    bool          `json:"processing"`
	FailureCode   string        `json:"failureCode,omitempty"`
	Order         *model.Order  `json:"order,omitempty"`
}

// NewFlow creates a checkout flow over the given cart and ledger,
// starting at the shipping step.
func NewFlow(c *cart.Cart, l *ledger.Ledger, ids ledger.Generator, gw payment.Gateway, logger zerolog.Logger) *Flow {
	return &Flow{
		step:    StepShipping,
		cart:    c,
		ledger:  l,
		ids:     ids,
		gateway: gw,
		logger:  logger.With().Str("component", "checkout").Logger(),
	}
}

// Start resets the flow to the shipping step. It is invoked both from
// the cart ("Secure Checkout") and from a product page via buy-now. The
// selected payment method survives a restart.
func (f *Flow) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.processing {
		return model.ErrCheckoutBusy
	}

	f.step = StepShipping
	f.failure = nil
	f.completed = nil
	return nil
}

// SetAddress records the shipping address. Permitted only at the
// shipping step.
func (f *Flow) SetAddress(addr model.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.processing {
		return model.ErrCheckoutBusy
	}
	if f.step != StepShipping {
		return model.ErrInvalidTransition
	}

	f.address = addr
	return nil
}

// SelectPaymentMethod records the payment method. Permitted only at the
// payment step; the method must be upi, card or cod.
func (f *Flow) SelectPaymentMethod(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.processing {
		return model.ErrCheckoutBusy
	}
	if f.step != StepPayment {
		return model.ErrInvalidTransition
	}
	if !model.ValidPaymentMethod(method) {
		return model.ErrInvalidPaymentMethod
	}

	f.method = method
	return nil
}

// Next advances the wizard one step. Shipping to payment is
// unconditional; payment to review requires a selected payment method.
// Review is left via Confirm, never Next.
func (f *Flow) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.processing {
		return model.ErrCheckoutBusy
	}

	switch f.step {
	case StepShipping:
		f.step = StepPayment
		return nil
	case StepPayment:
		if f.method == "" {
			return model.ErrPaymentMethodRequired
		}
		f.step = StepReview
		return nil
	default:
		return model.ErrInvalidTransition
	}
}

// Back steps the wizard backwards: payment to shipping, review to
// payment. There is no way back out of a completed checkout.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.processing {
		return model.ErrCheckoutBusy
	}

	switch f.step {
	case StepPayment:
		f.step = StepShipping
		return nil
	case StepReview:
		f.step = StepPayment
		return nil
	default:
		return model.ErrInvalidTransition
	}
}

// Retry returns a failed checkout to the payment step so the shopper can
// try another method.
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepFailed {
		return model.ErrInvalidTransition
	}

	f.step = StepPayment
	f.failure = nil
	return nil
}

// Confirm executes the only side-effecting transition: it authorises the
// payment and, on success, appends a frozen order to the ledger, clears
// the cart and completes the flow. On a payment error the flow enters
// the failed state with the cart intact.
func (f *Flow) Confirm(ctx context.Context) (*model.Order, error) {
	f.mu.Lock()
	if f.processing {
		f.mu.Unlock()
		return nil, model.ErrCheckoutBusy
	}
	if f.step != StepReview {
		f.mu.Unlock()
		return nil, model.ErrInvalidTransition
	}

	items, total := f.cart.Snapshot()
	if len(items) == 0 {
		f.mu.Unlock()
		return nil, model.ErrEmptyCart
	}

	method := f.method
	f.processing = true
	f.mu.Unlock()

	receipt, err := f.gateway.Authorize(ctx, payment.Request{
		Amount: total,
		Method: method,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.processing = false

	if err != nil {
		var payErr *payment.Error
		if !errors.As(err, &payErr) {
			payErr = payment.ErrNetwork
		}
		f.step = StepFailed
		f.failure = payErr
		f.logger.Warn().
			Str("code", payErr.Code).
			Float64("amount", total).
			Str("method", method).
			Msg("payment authorisation failed")
		return nil, payErr
	}

	order := model.Order{
		ID:             f.ids.OrderID(),
		Date:           time.Now().Format(orderDateFormat),
		Items:          items,
		Total:          total,
		Status:         model.StatusProcessing,
		TrackingNumber: f.ids.TrackingNumber(),
		PaymentMethod:  method,
		ReceiptID:      receipt.ID,
	}

	f.ledger.Append(order)
	f.cart.Clear()
	f.step = StepComplete
	f.completed = &order

	f.logger.Info().
		Str("order_id", order.ID).
		Str("tracking_number", order.TrackingNumber).
		Float64("total", order.Total).
		Int("items", len(order.Items)).
		Msg("order confirmed")

	return &order, nil
}

// View returns a snapshot of the current checkout state.
func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		Step:          f.step,
		Address:       f.address,
		PaymentMethod: f.method,
		Processing:    f.processing,
		Order:         f.completed,
	}
	if f.failure != nil {
		v.FailureCode = f.failure.Code
	}
	return v
}

package payment

import "errors"

// Domain errors for the checkout flow. The Stripe adapter translates SDK errors
// into these so stripe-go types never leak into services or handlers.
var (
	// ErrMissingPriceRef means the buy form posted no price reference at all.
	ErrMissingPriceRef = errors.New("payment: price reference is required")

	// ErrInvalidPriceRef means the reference did not resolve to a real, active
	// price inside the processor at checkout time.
	ErrInvalidPriceRef = errors.New("payment: price reference does not resolve to an active price")

	// ErrSessionNotFound covers unknown and expired session ids on re-fetch.
	ErrSessionNotFound = errors.New("payment: checkout session not found")

	// ErrProviderDown is a processor-side outage, not a problem with our request.
	ErrProviderDown = errors.New("payment: payment provider unavailable")
)

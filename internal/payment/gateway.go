package payment

import "context"

// CheckoutParams describes the hosted checkout session this system asks the
// processor to create. The processor owns the session's whole lifecycle; we only
// configure it here and read it back later.
type CheckoutParams struct {
	// PriceRef is the opaque processor price reference. The price amount itself
	// is authoritative only inside the processor.
	PriceRef string
	Quantity int64

	// Metadata is echoed back verbatim on completion and on re-fetch. It is the
	// only linkage between a session and our catalog.
	Metadata map[string]string

	SuccessURL string
	CancelURL  string

	// ShippingCountries, when non-empty, asks the processor to collect a
	// shipping address restricted to this allow-list. Physical goods only.
	ShippingCountries []string
}

// Session is the creation result: just enough to redirect the buyer to the
// hosted checkout page.
type Session struct {
	ID  string
	URL string
}

// SessionDetails is the re-read shape used by the success page and the download
// gate. It is a live read of the processor's record, not a cache of the webhook
// payload, so it stays correct even when the webhook is delayed or lost.
type SessionDetails struct {
	ID          string
	Paid        bool
	Metadata    map[string]string
	BuyerEmail  string
	BuyerName   string
	ProductName string
}

// Gateway is the port onto the payment processor's checkout API.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*Session, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*SessionDetails, error)
}

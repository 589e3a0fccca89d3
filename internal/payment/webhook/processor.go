package webhook

import "github.com/mevans2120/mm-ec-poc/internal/catalog"

// Event is the normalized completed-checkout notification handed to fulfillment.
// It is a snapshot of the session at completion time, carried by the processor's
// delivery; the success page does its own live re-read instead of trusting this.
type Event struct {
	SessionID   string
	ProductSlug string
	ProductType catalog.ProductType
	BuyerEmail  string
	BuyerName   string
}

// Processor verifies a provider notification and parses it into a domain event.
//
// payload must be the exact raw request bytes: the signature is computed over
// them, so any re-serialization upstream breaks verification. Deliveries the
// storefront does not act on come back as (nil, nil) after verification.
type Processor interface {
	Provider() string
	VerifyAndParse(payload []byte, headers map[string]string) (*Event, error)
}

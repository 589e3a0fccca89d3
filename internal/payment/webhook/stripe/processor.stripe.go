package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	stripewebhook "github.com/stripe/stripe-go/v79/webhook"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
	"github.com/mevans2120/mm-ec-poc/internal/payment/webhook"
)

// Processor verifies Stripe webhook signatures over the raw payload and maps
// checkout.session.completed events into the domain shape.
type Processor struct {
	secret string
}

func New(secret string) *Processor {
	return &Processor{secret: secret}
}

func (p *Processor) Provider() string {
	return "stripe"
}

// VerifyAndParse is the security boundary of the whole purchase flow.
// ConstructEvent checks the HMAC over the exact payload bytes and rejects
// timestamps outside the default tolerance window, which is our replay guard.
func (p *Processor) VerifyAndParse(payload []byte, headers map[string]string) (*webhook.Event, error) {
	event, err := stripewebhook.ConstructEvent(payload, headers["Stripe-Signature"], p.secret)
	if err != nil {
		return nil, fmt.Errorf("stripe signature invalid: %w", err)
	}

	// Anything other than a completed checkout is verified, acknowledged and
	// dropped. The processor keeps sending event types we never subscribed to.
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("stripe event payload malformed: %w", err)
	}

	out := &webhook.Event{
		SessionID:   sess.ID,
		ProductSlug: sess.Metadata["productSlug"],
		ProductType: catalog.ProductType(sess.Metadata["productType"]),
	}
	if sess.CustomerDetails != nil {
		out.BuyerEmail = sess.CustomerDetails.Email
		out.BuyerName = sess.CustomerDetails.Name
	}
	return out, nil
}

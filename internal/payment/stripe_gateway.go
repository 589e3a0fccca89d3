package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements Gateway over Stripe's hosted Checkout API.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway builds a gateway around its own client instance.
// We deliberately avoid the package-level stripe.Key global: a constructed
// client keeps the gateway injectable and lets tests point it at a stub server.
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

// NewStripeGatewayWithBackend is the test seam: API calls go to baseURL instead
// of api.stripe.com, with retries off so stubs see exactly one request.
func NewStripeGatewayWithBackend(apiKey, baseURL string) *StripeGateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		MaxNetworkRetries: stripe.Int64(0),
	})
	sc := &client.API{}
	sc.Init(apiKey, &stripe.Backends{API: backend})
	return &StripeGateway{client: sc}
}

// CreateCheckoutSession creates a hosted checkout session: mode=payment, one
// line item, metadata linkage, and shipping-address collection only when the
// caller supplied an allow-list.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*Session, error) {
	if p.PriceRef == "" {
		return nil, ErrMissingPriceRef
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceRef),
				Quantity: stripe.Int64(p.Quantity),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	if len(p.ShippingCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(p.ShippingCountries),
		}
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	// Context propagation: if our request dies, the call to Stripe is cancelled.
	params.Context = ctx

	sess, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

// GetCheckoutSession re-fetches a session by id, expanding line items down to
// the nested product so callers get the display name the buyer actually bought.
func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*SessionDetails, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	params.AddExpand("line_items.data.price.product")

	sess, err := g.client.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	details := &SessionDetails{
		ID:       sess.ID,
		Paid:     sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: sess.Metadata,
	}
	if sess.CustomerDetails != nil {
		details.BuyerEmail = sess.CustomerDetails.Email
		details.BuyerName = sess.CustomerDetails.Name
	}
	if sess.LineItems != nil && len(sess.LineItems.Data) > 0 {
		item := sess.LineItems.Data[0]
		if item.Price != nil && item.Price.Product != nil {
			details.ProductName = item.Price.Product.Name
		}
	}
	return details, nil
}

// mapStripeError converts external library errors into domain errors.
// This keeps 'stripe-go' imports from leaking into the service layer.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.Code == stripe.ErrorCodeResourceMissing:
			// resource_missing covers both a dead price ref at creation time and
			// an unknown session id on re-fetch; the param tells them apart.
			if strings.Contains(stripeErr.Param, "price") || strings.Contains(stripeErr.Param, "line_items") {
				return fmt.Errorf("%w: %s", ErrInvalidPriceRef, stripeErr.Msg)
			}
			return fmt.Errorf("%w: %s", ErrSessionNotFound, stripeErr.Msg)
		case stripeErr.HTTPStatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrSessionNotFound, stripeErr.Msg)
		case stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
			return ErrProviderDown
		}
	}
	return fmt.Errorf("payment provider error: %w", err)
}

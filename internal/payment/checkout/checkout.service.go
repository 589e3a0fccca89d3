package checkout

import (
	"context"

	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
	"github.com/mevans2120/mm-ec-poc/internal/payment"
)

// shippingCountries is the allow-list for physical goods. Digital and bundle
// purchases must never request address collection.
var shippingCountries = []string{"US", "CA"}

// Service is the Checkout Initiator: it turns a server-rendered buy form into a
// hosted checkout session and hands the redirect URL back to the handler.
type Service struct {
	gateway payment.Gateway
	baseURL string
	logger  *zap.Logger
}

func NewService(gateway payment.Gateway, baseURL string, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, baseURL: baseURL, logger: logger}
}

// StartInput carries the buy form values. They come from our own server-rendered
// form, and the price amount is authoritative only inside the processor, so a
// tampered price ref can at worst fail session creation.
type StartInput struct {
	PriceRef    string
	ProductType catalog.ProductType
	ProductSlug string
}

// Start validates the input, builds the session config and creates the session.
// A processor failure comes back as-is: there is no retry, the buyer sees an
// error page and tries again.
func (s *Service) Start(ctx context.Context, in StartInput) (*payment.Session, error) {
	if in.PriceRef == "" {
		return nil, payment.ErrMissingPriceRef
	}

	params := payment.CheckoutParams{
		PriceRef: in.PriceRef,
		Quantity: 1,
		Metadata: map[string]string{
			"productSlug": in.ProductSlug,
			"productType": string(in.ProductType),
		},
		// The processor substitutes the real session id into the literal
		// {CHECKOUT_SESSION_ID} placeholder when redirecting back.
		SuccessURL: s.baseURL + "/purchase/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/products/" + in.ProductSlug,
	}
	if in.ProductType.IsPhysical() {
		params.ShippingCountries = shippingCountries
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		s.logger.Error("checkout session creation failed",
			zap.String("slug", in.ProductSlug),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("checkout session created",
		zap.String("slug", in.ProductSlug),
		zap.String("session_id", sess.ID),
	)
	return sess, nil
}

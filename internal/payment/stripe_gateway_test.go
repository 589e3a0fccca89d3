package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStripeGatewayWithBackend("sk_test_stub", srv.URL)
}

func TestCreateCheckoutSessionSendsExpectedParams(t *testing.T) {
	var form map[string][]string
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_123", "url": "https://checkout.stripe.com/c/pay/cs_123"}`))
	})

	sess, err := gw.CreateCheckoutSession(context.Background(), CheckoutParams{
		PriceRef:   "price_abc",
		Quantity:   1,
		Metadata:   map[string]string{"productSlug": "soul-search-workbook", "productType": "digital"},
		SuccessURL: "https://example.com/purchase/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://example.com/products/soul-search-workbook",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_123", sess.URL)

	assert.Equal(t, []string{"payment"}, form["mode"])
	assert.Equal(t, []string{"price_abc"}, form["line_items[0][price]"])
	assert.Equal(t, []string{"1"}, form["line_items[0][quantity]"])
	assert.Equal(t, []string{"soul-search-workbook"}, form["metadata[productSlug]"])
	assert.Equal(t, []string{"digital"}, form["metadata[productType]"])
	assert.Contains(t, form["success_url"][0], "{CHECKOUT_SESSION_ID}")
	// No shipping allow-list was given, so no address collection is requested.
	assert.NotContains(t, form, "shipping_address_collection[allowed_countries][0]")
}

func TestCreateCheckoutSessionRequestsShippingAddresses(t *testing.T) {
	var form map[string][]string
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_456", "url": "https://checkout.stripe.com/c/pay/cs_456"}`))
	})

	_, err := gw.CreateCheckoutSession(context.Background(), CheckoutParams{
		PriceRef:          "price_phys",
		Quantity:          1,
		SuccessURL:        "https://example.com/s",
		CancelURL:         "https://example.com/c",
		ShippingCountries: []string{"US", "CA"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"US"}, form["shipping_address_collection[allowed_countries][0]"])
	assert.Equal(t, []string{"CA"}, form["shipping_address_collection[allowed_countries][1]"])
}

func TestCreateCheckoutSessionEmptyPriceRef(t *testing.T) {
	called := false
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := gw.CreateCheckoutSession(context.Background(), CheckoutParams{Quantity: 1})
	assert.ErrorIs(t, err, ErrMissingPriceRef)
	assert.False(t, called)
}

func TestCreateCheckoutSessionUnknownPrice(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "code": "resource_missing", "param": "line_items[0][price]", "message": "No such price: 'price_dead'"}}`))
	})

	_, err := gw.CreateCheckoutSession(context.Background(), CheckoutParams{
		PriceRef:   "price_dead",
		Quantity:   1,
		SuccessURL: "https://example.com/s",
		CancelURL:  "https://example.com/c",
	})
	assert.ErrorIs(t, err, ErrInvalidPriceRef)
}

func TestGetCheckoutSessionExpandsLineItems(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_789", r.URL.Path)
		assert.ElementsMatch(t, []string{"line_items", "line_items.data.price.product"}, r.URL.Query()["expand[]"])
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cs_789",
			"payment_status": "paid",
			"metadata": {"productSlug": "soul-search-workbook", "productType": "digital"},
			"customer_details": {"email": "ada@example.com", "name": "Ada Lovelace"},
			"line_items": {"data": [{"price": {"product": {"name": "Soul Search Workbook"}}}]}
		}`))
	})

	details, err := gw.GetCheckoutSession(context.Background(), "cs_789")
	require.NoError(t, err)
	assert.Equal(t, "cs_789", details.ID)
	assert.True(t, details.Paid)
	assert.Equal(t, "soul-search-workbook", details.Metadata["productSlug"])
	assert.Equal(t, "ada@example.com", details.BuyerEmail)
	assert.Equal(t, "Ada Lovelace", details.BuyerName)
	assert.Equal(t, "Soul Search Workbook", details.ProductName)
}

func TestGetCheckoutSessionUnpaid(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_open", "payment_status": "unpaid"}`))
	})

	details, err := gw.GetCheckoutSession(context.Background(), "cs_open")
	require.NoError(t, err)
	assert.False(t, details.Paid)
	assert.Empty(t, details.BuyerEmail)
}

func TestGetCheckoutSessionNotFound(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "code": "resource_missing", "message": "No such checkout session: 'cs_nope'"}}`))
	})

	_, err := gw.GetCheckoutSession(context.Background(), "cs_nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProviderOutageMapsToProviderDown(t *testing.T) {
	gw := newStubGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"type": "api_error", "message": "boom"}}`))
	})

	_, err := gw.GetCheckoutSession(context.Background(), "cs_any")
	assert.ErrorIs(t, err, ErrProviderDown)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
	"github.com/mevans2120/mm-ec-poc/internal/payment"
	"github.com/mevans2120/mm-ec-poc/internal/payment/checkout"
	"github.com/mevans2120/mm-ec-poc/internal/web"
)

// Handler glues the storefront services to the router. It owns no state beyond
// its injected collaborators; every request is an independent cycle.
type Handler struct {
	catalog  *catalog.Reader
	checkout *checkout.Service
	gateway  payment.Gateway
	pages    *web.Pages
	logger   *zap.Logger
	webhook  *WebhookHandler
}

func NewHandler(
	reader *catalog.Reader,
	checkoutSvc *checkout.Service,
	gateway payment.Gateway,
	webhookHandler *WebhookHandler,
	pages *web.Pages,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:  reader,
		checkout: checkoutSvc,
		gateway:  gateway,
		pages:    pages,
		logger:   logger,
		webhook:  webhookHandler,
	}
}

// ListProducts renders the catalog grid. A degraded store shows an empty state.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.ListProducts(r.Context())
	h.pages.Render(w, http.StatusOK, "products.html", web.ProductListData{Products: products})
}

// GetProduct renders one product page with its buy form.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product := h.catalog.GetProductBySlug(r.Context(), slug)
	if product == nil {
		h.pages.Render(w, http.StatusNotFound, "message.html", web.MessageData{
			Title: "Product Not Found",
			Body:  "We could not find that product. It may have been removed from the catalog.",
		})
		return
	}

	h.pages.Render(w, http.StatusOK, "product.html", web.ProductData{Product: *product})
}

// StartCheckout takes the buy form and redirects the buyer to hosted checkout.
// A processor failure is loud: no redirect, the buyer retries manually.
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess, err := h.checkout.Start(r.Context(), checkout.StartInput{
		PriceRef:    r.PostFormValue("priceId"),
		ProductType: catalog.ProductType(r.PostFormValue("productType")),
		ProductSlug: r.PostFormValue("productSlug"),
	})
	if err != nil {
		if errors.Is(err, payment.ErrMissingPriceRef) {
			http.Error(w, "price reference is required", http.StatusBadRequest)
			return
		}
		// No internal detail leaks to the buyer; the cause is already logged.
		http.Error(w, "checkout is unavailable right now, please try again", http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, sess.URL, http.StatusSeeOther)
}

// PurchaseSuccess renders the post-checkout confirmation from a live re-fetch of
// the session, so it reflects the processor's record even if the webhook was
// delayed or lost.
func (h *Handler) PurchaseSuccess(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		h.pages.Render(w, http.StatusOK, "message.html", web.MessageData{
			Title: "Invalid Session",
			Body:  "No checkout session was found. If you completed a purchase, check your email for confirmation.",
		})
		return
	}

	details, err := h.gateway.GetCheckoutSession(r.Context(), sessionID)
	if err != nil {
		h.logger.Warn("success page session fetch failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		h.pages.Render(w, http.StatusOK, "message.html", web.MessageData{
			Title: "Session Not Found",
			Body:  "We could not retrieve your checkout session. If you completed a purchase, check your email for confirmation details.",
		})
		return
	}

	buyerName := details.BuyerName
	if buyerName == "" {
		buyerName = "there"
	}
	productName := details.ProductName
	if productName == "" {
		productName = "your product"
	}
	productType := catalog.ProductType(details.Metadata["productType"])
	if !productType.Valid() {
		productType = catalog.TypeDigital
	}

	h.pages.Render(w, http.StatusOK, "success.html", web.SuccessData{
		BuyerName:   buyerName,
		ProductName: productName,
		ProductType: productType,
		ProductSlug: details.Metadata["productSlug"],
	})
}

// Download gates digital assets. The link in the email is unsigned, so before
// redirecting we re-check the session with the processor: it must be paid and
// its metadata must name this product.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	details, err := h.gateway.GetCheckoutSession(r.Context(), sessionID)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !details.Paid || details.Metadata["productSlug"] != slug {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	product := h.catalog.GetProductBySlug(r.Context(), slug)
	if product == nil || product.Type.IsPhysical() || product.DigitalFileURL == "" {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, product.DigitalFileURL, http.StatusFound)
}

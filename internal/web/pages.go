package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages renders the storefront's server-side views from embedded templates.
type Pages struct {
	tmpl   *template.Template
	logger *zap.Logger
}

func NewPages(logger *zap.Logger) (*Pages, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"badge": BadgeLabel,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Pages{tmpl: tmpl, logger: logger}, nil
}

// Render writes one named template. A render error after the header is written
// cannot be recovered, so it is logged and the response left as-is.
func (p *Pages) Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		p.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
	}
}

// BadgeLabel maps a product type to its catalog badge text. Exhaustive over the
// known variants; unknown data renders as-is so bad documents stay visible.
func BadgeLabel(t catalog.ProductType) string {
	switch t {
	case catalog.TypeDigital:
		return "Digital"
	case catalog.TypePhysical:
		return "Physical"
	case catalog.TypeBundle:
		return "Bundle"
	}
	return string(t)
}

// ProductListData feeds the catalog grid.
type ProductListData struct {
	Products []catalog.Product
}

// ProductData feeds the product detail page and its buy form.
type ProductData struct {
	Product catalog.Product
}

// SuccessData feeds the post-checkout confirmation page.
type SuccessData struct {
	BuyerName   string
	ProductName string
	ProductType catalog.ProductType
	ProductSlug string
}

// MessageData feeds the generic single-message page (invalid session, not found).
type MessageData struct {
	Title string
	Body  string
}

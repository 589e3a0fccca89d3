package catalog

import "github.com/shopspring/decimal"

// ProductType is the closed set of product variants the storefront sells.
// Every rendering decision (catalog badge, email body, success page block)
// switches on this type, so adding a new variant is a compile-time checklist
// instead of a scattered set of string comparisons.
type ProductType string

const (
	TypeDigital  ProductType = "digital"
	TypePhysical ProductType = "physical"
	TypeBundle   ProductType = "bundle"
)

// Valid reports whether t is one of the known variants.
// Metadata echoed back from the payment processor goes through here before
// anything branches on it.
func (t ProductType) Valid() bool {
	switch t {
	case TypeDigital, TypePhysical, TypeBundle:
		return true
	}
	return false
}

// IsPhysical is the one distinction fulfillment cares about: physical goods get
// a shipping promise, everything else gets a download.
func (t ProductType) IsPhysical() bool { return t == TypePhysical }

func (t ProductType) IsDigital() bool { return t == TypeDigital }

func (t ProductType) IsBundle() bool { return t == TypeBundle }

// Slug mirrors the content store's slug object. Only Current matters to us.
type Slug struct {
	Current string `json:"current"`
}

// ImageRef is an unreferenced pointer into the content store's asset pipeline.
// The storefront only needs to know whether an image exists.
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// Product is a read-only projection of a content store document. The store owns
// the data; nothing in this system writes products outside the seeding CLI.
//
// Price is display-only. The amount actually charged lives behind StripePriceID
// inside the payment processor, which is the authority at checkout time.
type Product struct {
	ID             string          `json:"_id"`
	Title          string          `json:"title"`
	Slug           Slug            `json:"slug"`
	Description    string          `json:"description"`
	Image          *ImageRef       `json:"image,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Type           ProductType     `json:"productType"`
	StripePriceID  string          `json:"stripePriceId"`
	DigitalFileURL string          `json:"digitalFileUrl,omitempty"`
	Featured       bool            `json:"featured"`
	Order          int             `json:"order"`
}

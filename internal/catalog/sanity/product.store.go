package sanity

import (
	"context"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
)

// GROQ queries for the product documents. The digitalFileUrl projection
// dereferences the uploaded asset so callers get a plain URL back instead of an
// asset ref they would have to resolve themselves.
const (
	allProductsQuery = `*[_type == "product"] | order(order asc) {
  _id,
  title,
  slug,
  description,
  image,
  price,
  productType,
  stripePriceId,
  featured,
  order,
  "digitalFileUrl": digitalFile.asset->url
}`

	productBySlugQuery = `*[_type == "product" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  description,
  image,
  price,
  productType,
  stripePriceId,
  featured,
  order,
  "digitalFileUrl": digitalFile.asset->url
}`
)

// ProductStore implements catalog.Store over the Sanity query API.
type ProductStore struct {
	client *Client
}

func NewProductStore(client *Client) *ProductStore {
	return &ProductStore{client: client}
}

func (s *ProductStore) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := s.client.Query(ctx, allProductsQuery, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductBySlug returns (nil, nil) when the slug matches nothing: the store
// answers null for [0] on an empty result and Query leaves the pointer alone.
func (s *ProductStore) GetProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var product *catalog.Product
	if err := s.client.Query(ctx, productBySlugQuery, map[string]string{"slug": slug}, &product); err != nil {
		return nil, err
	}
	return product, nil
}

package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog/sanity"
)

// Mutator is the slice of the content store client the seeder needs.
type Mutator interface {
	Mutate(ctx context.Context, mutations []sanity.Mutation) (*sanity.MutateResult, error)
}

// Seeder upserts the fixed catalog into the content store. Document ids are
// deterministic per slug, so a re-run replaces documents in place instead of
// duplicating them.
type Seeder struct {
	mutator Mutator
	logger  *zap.Logger
}

func NewSeeder(mutator Mutator, logger *zap.Logger) *Seeder {
	return &Seeder{mutator: mutator, logger: logger}
}

// Run applies the whole catalog in one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	mutations := BuildMutations(Products)

	result, err := s.mutator.Mutate(ctx, mutations)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	for _, r := range result.Results {
		s.logger.Info("product upserted",
			zap.String("id", r.ID),
			zap.String("operation", r.Operation),
		)
	}
	s.logger.Info("catalog seeded",
		zap.String("transaction_id", result.TransactionID),
		zap.Int("documents", len(mutations)),
	)
	return nil
}

// DocumentID is the deterministic per-slug id the upsert keys on.
func DocumentID(slug string) string {
	return "product-" + slug
}

// BuildMutations turns the seed catalog into createOrReplace mutations.
// Prices marshal as bare numbers: the store holds a number field, and decimal's
// default JSON form is a quoted string.
func BuildMutations(products []ProductSeed) []sanity.Mutation {
	mutations := make([]sanity.Mutation, 0, len(products))
	for _, p := range products {
		doc := map[string]any{
			"_type":         "product",
			"_id":           DocumentID(p.Slug),
			"title":         p.Title,
			"slug":          map[string]any{"_type": "slug", "current": p.Slug},
			"description":   p.Description,
			"price":         json.Number(p.Price.String()),
			"productType":   string(p.Type),
			"stripePriceId": p.StripePriceID,
			"featured":      p.Featured,
			"order":         p.Order,
		}
		mutations = append(mutations, sanity.Mutation{CreateOrReplace: doc})
	}
	return mutations
}

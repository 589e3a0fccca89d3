package seed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog/sanity"
)

type fakeMutator struct {
	calls  [][]sanity.Mutation
	result *sanity.MutateResult
	err    error
}

func (f *fakeMutator) Mutate(_ context.Context, mutations []sanity.Mutation) (*sanity.MutateResult, error) {
	f.calls = append(f.calls, mutations)
	return f.result, f.err
}

func TestBuildMutationsShape(t *testing.T) {
	mutations := BuildMutations(Products)
	require.Len(t, mutations, len(Products))

	first := mutations[0].CreateOrReplace
	assert.Equal(t, "product", first["_type"])
	assert.Equal(t, "product-soul-search-workbook", first["_id"])
	assert.Equal(t, "Soul Search Workbook", first["title"])
	assert.Equal(t, map[string]any{"_type": "slug", "current": "soul-search-workbook"}, first["slug"])
	assert.Equal(t, "digital", first["productType"])
	assert.Equal(t, "price_1SxDnEAUnkaWZ0lgCqtsgn86", first["stripePriceId"])
	assert.Equal(t, true, first["featured"])
	assert.Equal(t, 1, first["order"])
}

func TestBuildMutationsPriceMarshalsAsNumber(t *testing.T) {
	mutations := BuildMutations(Products)
	raw, err := json.Marshal(mutations[0].CreateOrReplace)
	require.NoError(t, err)

	// The store field is a number, so no quotes around the value.
	assert.Contains(t, string(raw), `"price":19.99`)
}

func TestBuildMutationsDeterministic(t *testing.T) {
	a, err := json.Marshal(BuildMutations(Products))
	require.NoError(t, err)
	b, err := json.Marshal(BuildMutations(Products))
	require.NoError(t, err)

	// The same ids and bodies every run: a re-run replaces in place.
	assert.JSONEq(t, string(a), string(b))
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "product-career-journal", DocumentID("career-journal"))
}

func TestSeedCatalogTypesAreValid(t *testing.T) {
	for _, p := range Products {
		assert.True(t, p.Type.Valid(), "product %q has type %q", p.Slug, p.Type)
		assert.NotEmpty(t, p.StripePriceID, "product %q has no price ref", p.Slug)
	}
}

func TestRunSendsOneTransaction(t *testing.T) {
	mutator := &fakeMutator{result: &sanity.MutateResult{
		TransactionID: "txn_1",
		Results: []sanity.MutationResult{
			{ID: "product-soul-search-workbook", Operation: "update"},
		},
	}}
	seeder := NewSeeder(mutator, zap.NewNop())

	err := seeder.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, mutator.calls, 1)
	assert.Len(t, mutator.calls[0], len(Products))
}

func TestRunSurfacesMutateFailure(t *testing.T) {
	mutator := &fakeMutator{err: errors.New("401 unauthorized")}
	seeder := NewSeeder(mutator, zap.NewNop())

	err := seeder.Run(context.Background())
	assert.Error(t, err)
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/pipeline"

	"github.com/stretchr/testify/require"
)

// scriptedClient returns one canned completion per call, in order.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
}

func (s *scriptedClient) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.responses[s.calls-1], nil
}

// memRecipeController stores records in memory, scoped by owner phone like
// the real repository query.
type memRecipeController struct {
	mu      sync.Mutex
	nextID  uint
	records []entity.RecipeRecord
}

func (m *memRecipeController) CreateRecipe(_ context.Context, r *entity.RecipeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.records = append(m.records, *r)
	return nil
}

func (m *memRecipeController) ListRecipesByOwner(_ context.Context, ownerPhone string, limit int) ([]entity.RecipeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.RecipeRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].OwnerPhone != ownerPhone {
			continue
		}
		out = append(out, m.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

const recipeBlob = "| Ingredient | Quantity |\n|---|---|\n| Rice | 1 cup |\n\n1. **Rinse** the rice."

func TestGenerate_TwoStagePersistsCategory(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{responses: []string{"Veg", recipeBlob}}
	store := &memRecipeController{}
	svc := NewRecipeService(pipeline.NewTwoStagePipeline(client), store)

	record, err := svc.Generate(context.Background(), "9876543210", "Jeera Rice")
	require.NoError(t, err)
	require.Equal(t, "Veg", record.Category)
	require.Equal(t, recipeBlob, record.Recipe)
	require.Equal(t, "9876543210", record.OwnerPhone)
	require.Len(t, store.records, 1)
}

func TestGenerate_GuardedDefaultsCategory(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{responses: []string{recipeBlob}}
	store := &memRecipeController{}
	svc := NewRecipeService(pipeline.NewGuardedPipeline(client), store)

	record, err := svc.Generate(context.Background(), "9876543210", "Jeera Rice")
	require.NoError(t, err)
	require.Equal(t, DefaultCategory, record.Category)
}

func TestGenerate_RefusalIsPersisted(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{responses: []string{pipeline.RefusalMessage}}
	store := &memRecipeController{}
	svc := NewRecipeService(pipeline.NewGuardedPipeline(client), store)

	record, err := svc.Generate(context.Background(), "9876543210", "a wooden chair")
	require.NoError(t, err)
	require.Equal(t, pipeline.RefusalMessage, record.Recipe)
	require.Len(t, store.records, 1, "a refusal is a valid completion and must be persisted")
}

func TestGenerate_NoRecordOnPipelineFailure(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{err: errors.New("upstream down")}
	store := &memRecipeController{}
	svc := NewRecipeService(pipeline.NewTwoStagePipeline(client), store)

	_, err := svc.Generate(context.Background(), "9876543210", "Jeera Rice")
	require.ErrorIs(t, err, entity.ErrModelUnavailable)
	require.Empty(t, store.records, "no record may be written unless the pipeline fully succeeds")
}

func TestGenerate_BlankDishSkipsModel(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{}
	store := &memRecipeController{}
	svc := NewRecipeService(pipeline.NewTwoStagePipeline(client), store)

	_, err := svc.Generate(context.Background(), "9876543210", "   ")
	require.ErrorIs(t, err, entity.ErrEmptyDish)
	require.Zero(t, client.calls)
	require.Empty(t, store.records)
}

func TestHistory_ScopedToOwner(t *testing.T) {
	t.Parallel()

	store := &memRecipeController{}
	for _, r := range []entity.RecipeRecord{
		{OwnerPhone: "9876543210", DishName: "Dal"},
		{OwnerPhone: "1112223334", DishName: "Pasta"},
		{OwnerPhone: "9876543210", DishName: "Kheer"},
	} {
		r := r
		require.NoError(t, store.CreateRecipe(context.Background(), &r))
	}

	svc := NewRecipeService(pipeline.NewGuardedPipeline(&scriptedClient{}), store)

	records, err := svc.History(context.Background(), "9876543210", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		require.Equal(t, "9876543210", r.OwnerPhone)
	}
	// Newest first.
	require.Equal(t, "Kheer", records[0].DishName)
}

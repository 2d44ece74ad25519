package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepository struct {
	inventory  *entities.UserInventory
	ownedIDs   []uint
	items      []domain.InventoryItemRow
	categories []entities.CategoryIngredient

	created        *entities.UserInventory
	addQuantity    float64
	addErr         error
	adjustQuantity float64
	adjustErr      error
}

func (f *fakeInventoryRepository) GetInventoryByUserID(ctx context.Context, userID string) (*entities.UserInventory, error) {
	if f.inventory == nil || f.inventory.UserID != userID {
		return nil, domain.ErrNoInventory
	}
	return f.inventory, nil
}

func (f *fakeInventoryRepository) CreateInventory(ctx context.Context, inventory *entities.UserInventory) error {
	f.created = inventory
	return nil
}

func (f *fakeInventoryRepository) GetOwnedIngredientIDs(ctx context.Context, inventoryID uuid.UUID) ([]uint, error) {
	return f.ownedIDs, nil
}

func (f *fakeInventoryRepository) GetInventoryItems(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventoryItemRow, error) {
	return f.items, nil
}

func (f *fakeInventoryRepository) GetIngredientCategories(ctx context.Context) ([]entities.CategoryIngredient, error) {
	return f.categories, nil
}

func (f *fakeInventoryRepository) AddIngredient(ctx context.Context, inventoryID uuid.UUID, ingredientID uint) (float64, error) {
	return f.addQuantity, f.addErr
}

func (f *fakeInventoryRepository) AdjustRecordQuantity(ctx context.Context, inventoryID uuid.UUID, ingredientID uint, delta float64) (float64, error) {
	return f.adjustQuantity, f.adjustErr
}

func TestGetOwnershipSetWithoutInventory(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := NewInventoryService(repo)

	owned, err := service.GetOwnershipSet(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, owned)
	assert.Empty(t, owned)
}

func TestGetOwnershipSetContents(t *testing.T) {
	repo := &fakeInventoryRepository{
		inventory: &entities.UserInventory{ID: uuid.New(), UserID: "user-1"},
		ownedIDs:  []uint{10, 20, 20},
	}
	service := NewInventoryService(repo)

	owned, err := service.GetOwnershipSet(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Len(t, owned, 2)
	_, hasSalt := owned[10]
	_, hasWater := owned[20]
	assert.True(t, hasSalt)
	assert.True(t, hasWater)
}

func TestEnsureInventoryCreatesWhenMissing(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := NewInventoryService(repo)

	err := service.EnsureInventory(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "user-1", repo.created.UserID)
}

func TestEnsureInventoryNoopWhenPresent(t *testing.T) {
	repo := &fakeInventoryRepository{
		inventory: &entities.UserInventory{ID: uuid.New(), UserID: "user-1"},
	}
	service := NewInventoryService(repo)

	err := service.EnsureInventory(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, repo.created)
}

func TestAddIngredientWithoutInventory(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := NewInventoryService(repo)

	_, err := service.AddIngredient(context.Background(), "user-1", 10)
	assert.ErrorIs(t, err, domain.ErrNoInventory)
}

func TestAdjustQuantityMissingRecord(t *testing.T) {
	repo := &fakeInventoryRepository{
		inventory: &entities.UserInventory{ID: uuid.New(), UserID: "user-1"},
		adjustErr: domain.ErrIngredientNotInInventory,
	}
	service := NewInventoryService(repo)

	_, err := service.AdjustQuantity(context.Background(), "user-1", 10, -1)
	assert.ErrorIs(t, err, domain.ErrIngredientNotInInventory)
}

func TestAdjustQuantitySuccess(t *testing.T) {
	repo := &fakeInventoryRepository{
		inventory:      &entities.UserInventory{ID: uuid.New(), UserID: "user-1"},
		adjustQuantity: 3,
	}
	service := NewInventoryService(repo)

	res, err := service.AdjustQuantity(context.Background(), "user-1", 10, 1)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 3.0, res.NewQuantity)
}

func TestGetInventorySnapshotSeedsEmptyCategories(t *testing.T) {
	repo := &fakeInventoryRepository{
		inventory: &entities.UserInventory{ID: uuid.New(), UserID: "user-1"},
		categories: []entities.CategoryIngredient{
			{ID: 1, Name: "Produce"},
			{ID: 2, Name: "Dairy"},
		},
		items: []domain.InventoryItemRow{
			{ID: 10, Name: "Apple", Quantity: 2, CategoryID: 1, UnitID: 1, UnitName: "piece", UnitAbbreviation: "pc"},
		},
	}
	service := NewInventoryService(repo)

	res, err := service.GetInventory(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, res.Categories, 2)
	require.Len(t, res.Items[1], 1)
	assert.Equal(t, "Apple", res.Items[1][0].Name)
	require.NotNil(t, res.Items[2])
	assert.Empty(t, res.Items[2])
}

func TestGetInventorySnapshotWithoutInventory(t *testing.T) {
	repo := &fakeInventoryRepository{
		categories: []entities.CategoryIngredient{{ID: 1, Name: "Produce"}},
	}
	service := NewInventoryService(repo)

	res, err := service.GetInventory(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, res.Categories, 1)
	assert.Empty(t, res.Items[1])
}

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		delta        float64
		wantQuantity float64
		wantRemove   bool
	}{
		{"increment", 2, 1, 3, false},
		{"decrement above zero", 2, -1, 1, false},
		{"decrement to exactly zero removes", 2, -2, 0, true},
		{"decrement past zero floors", 2, -3, 0, true},
		{"fractional result persists", 0.5, 0.25, 0.75, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, remove := applyDelta(tt.current, tt.delta)
			assert.Equal(t, tt.wantQuantity, got)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}

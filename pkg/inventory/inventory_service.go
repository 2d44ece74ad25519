package inventory

import (
	"context"
	"errors"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
)

type (
	InventoryService interface {
		GetOwnershipSet(ctx context.Context, userID string) (map[uint]struct{}, error)
		GetInventory(ctx context.Context, userID string) (domain.InventorySnapshotResponse, error)
		EnsureInventory(ctx context.Context, userID string) error
		AddIngredient(ctx context.Context, userID string, ingredientID uint) (domain.InventoryMutationResponse, error)
		AdjustQuantity(ctx context.Context, userID string, ingredientID uint, delta float64) (domain.InventoryMutationResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

// GetOwnershipSet resolves the set of ingredient ids the user currently
// owns. A user without an inventory owns nothing; that is not an error.
func (s *inventoryService) GetOwnershipSet(ctx context.Context, userID string) (map[uint]struct{}, error) {
	inventory, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) {
			return map[uint]struct{}{}, nil
		}
		return nil, err
	}

	ids, err := s.inventoryRepository.GetOwnedIngredientIDs(ctx, inventory.ID)
	if err != nil {
		return nil, err
	}

	owned := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		owned[id] = struct{}{}
	}
	return owned, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, userID string) (domain.InventorySnapshotResponse, error) {
	categories, err := s.inventoryRepository.GetIngredientCategories(ctx)
	if err != nil {
		return domain.InventorySnapshotResponse{}, err
	}

	res := domain.InventorySnapshotResponse{
		Categories: make([]domain.CategoryIngredientResponse, 0, len(categories)),
		Items:      make(map[uint][]domain.InventoryItem, len(categories)),
	}
	for _, cat := range categories {
		res.Categories = append(res.Categories, domain.CategoryIngredientResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		})
		res.Items[cat.ID] = []domain.InventoryItem{}
	}

	inventory, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) {
			return res, nil
		}
		return domain.InventorySnapshotResponse{}, err
	}

	rows, err := s.inventoryRepository.GetInventoryItems(ctx, inventory.ID)
	if err != nil {
		return domain.InventorySnapshotResponse{}, err
	}

	for _, row := range rows {
		res.Items[row.CategoryID] = append(res.Items[row.CategoryID], domain.InventoryItem{
			ID:       row.ID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Unit: domain.UnitResponse{
				ID:           row.UnitID,
				Name:         row.UnitName,
				Abbreviation: row.UnitAbbreviation,
			},
			CategoryID: row.CategoryID,
		})
	}

	return res, nil
}

func (s *inventoryService) EnsureInventory(ctx context.Context, userID string) error {
	_, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNoInventory) {
		return err
	}

	return s.inventoryRepository.CreateInventory(ctx, &entities.UserInventory{UserID: userID})
}

func (s *inventoryService) AddIngredient(ctx context.Context, userID string, ingredientID uint) (domain.InventoryMutationResponse, error) {
	inventory, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err != nil {
		return domain.InventoryMutationResponse{}, err
	}

	newQuantity, err := s.inventoryRepository.AddIngredient(ctx, inventory.ID, ingredientID)
	if err != nil {
		return domain.InventoryMutationResponse{}, err
	}

	return domain.InventoryMutationResponse{Success: true, NewQuantity: newQuantity}, nil
}

func (s *inventoryService) AdjustQuantity(ctx context.Context, userID string, ingredientID uint, delta float64) (domain.InventoryMutationResponse, error) {
	inventory, err := s.inventoryRepository.GetInventoryByUserID(ctx, userID)
	if err != nil {
		return domain.InventoryMutationResponse{}, err
	}

	newQuantity, err := s.inventoryRepository.AdjustRecordQuantity(ctx, inventory.ID, ingredientID, delta)
	if err != nil {
		return domain.InventoryMutationResponse{}, err
	}

	return domain.InventoryMutationResponse{Success: true, NewQuantity: newQuantity}, nil
}

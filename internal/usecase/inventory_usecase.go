package usecase

import (
	"context"
	"strings"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"
	"farmlytic/pkg/errors"
)

type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryUseCase(inventoryRepo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
	}
}

type InventoryItemInput struct {
	Name      string
	Type      string
	Quantity  int
	Unit      string
	Price     float64
	Available bool
}

func (uc *InventoryUseCase) Create(ctx context.Context, supplierID string, input InventoryItemInput) (*entity.InventoryItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("name")
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}

	item := &entity.InventoryItem{
		SupplierID: supplierID,
		Name:       input.Name,
		Type:       input.Type,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		Price:      input.Price,
		Available:  input.Available,
	}

	if err := uc.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *InventoryUseCase) Update(ctx context.Context, supplierID, itemID string, input InventoryItemInput) (*entity.InventoryItem, error) {
	item, err := uc.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.SupplierID != supplierID {
		return nil, errors.Forbidden("You don't have permission to modify this item", nil)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("name")
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}

	item.Name = input.Name
	item.Type = input.Type
	item.Quantity = input.Quantity
	item.Unit = input.Unit
	item.Price = input.Price
	item.Available = input.Available

	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *InventoryUseCase) Delete(ctx context.Context, supplierID, itemID string) error {
	item, err := uc.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.SupplierID != supplierID {
		return errors.Forbidden("You don't have permission to delete this item", nil)
	}

	return uc.inventoryRepo.Delete(ctx, itemID)
}

func (uc *InventoryUseCase) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.InventoryItem, error) {
	return uc.inventoryRepo.ListBySupplier(ctx, supplierID)
}

// ListAvailable feeds the farmers' item picker when raising purchase
// requests.
func (uc *InventoryUseCase) ListAvailable(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.inventoryRepo.ListAvailable(ctx)
}

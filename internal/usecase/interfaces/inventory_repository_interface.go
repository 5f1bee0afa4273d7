package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// IInventoryRepository abstracts stock accounting storage.
//
// Reserve increments stock_reserved and creates the allocation atomically, but only while the stored
// stock_on_hand and stock_reserved still equal the values in item (ErrConditionFailed otherwise).
// SettleAllocation moves a reserved allocation to consumed or released and adjusts the item counters in the
// same atomic write.

type IInventoryRepository interface {
	CreateItem(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
	GetItem(ctx context.Context, tenantID, id string) (entities.InventoryItem, error)
	AddStock(ctx context.Context, tenantID, id string, qty int64) (entities.InventoryItem, error)
	Reserve(ctx context.Context, item entities.InventoryItem, alloc entities.Allocation) error
	GetAllocation(ctx context.Context, tenantID, id string) (entities.Allocation, error)
	SettleAllocation(ctx context.Context, alloc entities.Allocation, to entities.AllocationState) error
}

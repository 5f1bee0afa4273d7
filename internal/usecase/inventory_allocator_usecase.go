package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/infrastructure/metrics"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInventoryItemNotFound  = errors.New("inventory item not found")
	ErrAllocationNotFound     = errors.New("allocation not found")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidAllocationState = errors.New("invalid allocation state")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidInventoryItemID = errors.New("invalid inventory item id")
	ErrInvalidInventoryItem   = errors.New("invalid inventory item")
)

// IInventoryAllocator owns stock-on-hand/reserved accounting for a tenant catalog.
//
// Reserve never oversells: the availability check and the reserved increment are one conditional write.

type IInventoryAllocator interface {
	CreateItem(ctx context.Context, tenantID string, cmd CreateInventoryItemCommand) (entities.InventoryItem, error)
	GetItem(ctx context.Context, tenantID, itemID string) (entities.InventoryItem, error)
	ReceiveStock(ctx context.Context, tenantID, itemID string, qty int64) (entities.InventoryItem, error)
	Reserve(ctx context.Context, tenantID, itemID string, qty int64, taskID string) (entities.Allocation, error)
	Consume(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error)
	Release(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error)
	GetAllocation(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error)
}

type CreateInventoryItemCommand struct {
	SKU         string
	Name        string
	UnitPrice   decimal.Decimal
	StockOnHand int64
}

type InventoryAllocatorUseCase struct {
	repo interfaces.IInventoryRepository
	now  func() time.Time
}

var _ IInventoryAllocator = (*InventoryAllocatorUseCase)(nil)

func NewInventoryAllocatorUseCase(repo interfaces.IInventoryRepository) *InventoryAllocatorUseCase {
	return &InventoryAllocatorUseCase{repo: repo, now: utcNow}
}

func (u *InventoryAllocatorUseCase) CreateItem(ctx context.Context, tenantID string, cmd CreateInventoryItemCommand) (entities.InventoryItem, error) {
	trimAll(&tenantID, &cmd.SKU, &cmd.Name)
	if tenantID == "" {
		return entities.InventoryItem{}, ErrInvalidTenantID
	}
	if cmd.Name == "" || cmd.UnitPrice.IsNegative() || cmd.StockOnHand < 0 {
		return entities.InventoryItem{}, ErrInvalidInventoryItem
	}

	now := u.now()
	item := entities.InventoryItem{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		SKU:         cmd.SKU,
		Name:        cmd.Name,
		UnitPrice:   cmd.UnitPrice,
		StockOnHand: cmd.StockOnHand,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.CreateItem(ctx, item)
}

func (u *InventoryAllocatorUseCase) GetItem(ctx context.Context, tenantID, itemID string) (entities.InventoryItem, error) {
	trimAll(&tenantID, &itemID)
	if tenantID == "" {
		return entities.InventoryItem{}, ErrInvalidTenantID
	}
	if itemID == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}

	item, err := u.repo.GetItem(ctx, tenantID, itemID)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}
	return item, nil
}

func (u *InventoryAllocatorUseCase) ReceiveStock(ctx context.Context, tenantID, itemID string, qty int64) (entities.InventoryItem, error) {
	trimAll(&tenantID, &itemID)
	if tenantID == "" {
		return entities.InventoryItem{}, ErrInvalidTenantID
	}
	if itemID == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}
	if qty <= 0 {
		return entities.InventoryItem{}, ErrInvalidQuantity
	}

	item, err := u.repo.AddStock(ctx, tenantID, itemID, qty)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}
	log.Printf("[inventory][usecase] stock received tenant=%s item_id=%s qty=%d on_hand=%d", tenantID, itemID, qty, item.StockOnHand)
	return item, nil
}

func (u *InventoryAllocatorUseCase) Reserve(ctx context.Context, tenantID, itemID string, qty int64, taskID string) (entities.Allocation, error) {
	trimAll(&tenantID, &itemID, &taskID)
	if tenantID == "" {
		return entities.Allocation{}, ErrInvalidTenantID
	}
	if itemID == "" {
		return entities.Allocation{}, ErrInvalidInventoryItemID
	}
	if taskID == "" {
		return entities.Allocation{}, ErrInvalidTaskID
	}
	if qty <= 0 {
		return entities.Allocation{}, ErrInvalidQuantity
	}

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		item, err := u.repo.GetItem(ctx, tenantID, itemID)
		if err != nil {
			return entities.Allocation{}, err
		}
		if item.ID == "" {
			return entities.Allocation{}, ErrInventoryItemNotFound
		}

		if available := item.StockAvailable(); qty > available {
			log.Printf("[inventory][usecase] reserve rejected tenant=%s item_id=%s task_id=%s requested=%d available=%d", tenantID, itemID, taskID, qty, available)
			metrics.InventoryOperationsTotal.WithLabelValues("reserve", "insufficient_stock").Inc()
			return entities.Allocation{}, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, qty, available)
		}

		now := u.now()
		alloc := entities.Allocation{
			ID:              uuid.NewString(),
			TenantID:        tenantID,
			InventoryItemID: itemID,
			TaskID:          taskID,
			Qty:             qty,
			State:           entities.AllocationStateReserved,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		err = u.repo.Reserve(ctx, item, alloc)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[inventory][usecase] reserve lost race tenant=%s item_id=%s attempt=%d", tenantID, itemID, attempt)
			metrics.CASRetriesTotal.WithLabelValues("inventory_item").Inc()
			continue
		}
		if err != nil {
			return entities.Allocation{}, err
		}

		metrics.InventoryOperationsTotal.WithLabelValues("reserve", "ok").Inc()
		log.Printf("[inventory][usecase] reserved tenant=%s item_id=%s task_id=%s allocation_id=%s qty=%d", tenantID, itemID, taskID, alloc.ID, qty)
		return alloc, nil
	}

	metrics.InventoryOperationsTotal.WithLabelValues("reserve", "conflict").Inc()
	return entities.Allocation{}, ErrConcurrentModification
}

func (u *InventoryAllocatorUseCase) Consume(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error) {
	return u.settle(ctx, tenantID, allocationID, entities.AllocationStateConsumed)
}

func (u *InventoryAllocatorUseCase) Release(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error) {
	return u.settle(ctx, tenantID, allocationID, entities.AllocationStateReleased)
}

func (u *InventoryAllocatorUseCase) GetAllocation(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error) {
	trimAll(&tenantID, &allocationID)
	if tenantID == "" {
		return entities.Allocation{}, ErrInvalidTenantID
	}
	if allocationID == "" {
		return entities.Allocation{}, ErrAllocationNotFound
	}

	alloc, err := u.repo.GetAllocation(ctx, tenantID, allocationID)
	if err != nil {
		return entities.Allocation{}, err
	}
	if alloc.ID == "" {
		return entities.Allocation{}, ErrAllocationNotFound
	}
	return alloc, nil
}

func (u *InventoryAllocatorUseCase) settle(ctx context.Context, tenantID, allocationID string, to entities.AllocationState) (entities.Allocation, error) {
	op := "consume"
	if to == entities.AllocationStateReleased {
		op = "release"
	}

	trimAll(&tenantID, &allocationID)
	if tenantID == "" {
		return entities.Allocation{}, ErrInvalidTenantID
	}
	if allocationID == "" {
		return entities.Allocation{}, ErrAllocationNotFound
	}

	alloc, err := u.loadReserved(ctx, tenantID, allocationID)
	if err != nil {
		metrics.InventoryOperationsTotal.WithLabelValues(op, "rejected").Inc()
		return entities.Allocation{}, err
	}

	err = u.repo.SettleAllocation(ctx, alloc, to)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Someone settled it first; report what they left behind.
		if _, lerr := u.loadReserved(ctx, tenantID, allocationID); lerr != nil {
			metrics.InventoryOperationsTotal.WithLabelValues(op, "rejected").Inc()
			return entities.Allocation{}, lerr
		}
		metrics.InventoryOperationsTotal.WithLabelValues(op, "conflict").Inc()
		return entities.Allocation{}, ErrConcurrentModification
	}
	if err != nil {
		return entities.Allocation{}, err
	}

	alloc.State = to
	alloc.UpdatedAt = u.now()
	metrics.InventoryOperationsTotal.WithLabelValues(op, "ok").Inc()
	log.Printf("[inventory][usecase] allocation %s tenant=%s allocation_id=%s item_id=%s qty=%d", to, tenantID, alloc.ID, alloc.InventoryItemID, alloc.Qty)
	return alloc, nil
}

func (u *InventoryAllocatorUseCase) loadReserved(ctx context.Context, tenantID, allocationID string) (entities.Allocation, error) {
	alloc, err := u.repo.GetAllocation(ctx, tenantID, allocationID)
	if err != nil {
		return entities.Allocation{}, err
	}
	if alloc.ID == "" {
		return entities.Allocation{}, ErrAllocationNotFound
	}
	if alloc.State != entities.AllocationStateReserved {
		return entities.Allocation{}, fmt.Errorf("%w: allocation %s is %s", ErrInvalidAllocationState, alloc.ID, alloc.State)
	}
	return alloc, nil
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a part in a tenant catalog.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//
// Invariant: 0 <= StockReserved <= StockOnHand.
type InventoryItem struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockOnHand   int64           `json:"stock_on_hand"`
	StockReserved int64           `json:"stock_reserved"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (i InventoryItem) StockAvailable() int64 {
	return i.StockOnHand - i.StockReserved
}

type AllocationState string

const (
	AllocationStateReserved AllocationState = "reserved"
	AllocationStateConsumed AllocationState = "consumed"
	AllocationStateReleased AllocationState = "released"
)

// Terminal reports whether no further transition is allowed.
func (s AllocationState) Terminal() bool {
	return s == AllocationStateConsumed || s == AllocationStateReleased
}

// Allocation is a quantity of an inventory item reserved for a task.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
type Allocation struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	InventoryItemID string          `json:"inventory_item_id"`
	TaskID          string          `json:"task_id"`
	Qty             int64           `json:"qty"`
	State           AllocationState `json:"state"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

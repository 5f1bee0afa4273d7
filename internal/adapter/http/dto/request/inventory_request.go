package request

import (
	"garage_workflow/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateInventoryItemRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	StockOnHand int64           `json:"stock_on_hand"`
}

func (r CreateInventoryItemRequest) ToCommand() usecase.CreateInventoryItemCommand {
	return usecase.CreateInventoryItemCommand{
		SKU:         r.SKU,
		Name:        r.Name,
		UnitPrice:   r.UnitPrice,
		StockOnHand: r.StockOnHand,
	}
}

type ReceiveStockRequest struct {
	Qty int64 `json:"qty" binding:"required"`
}

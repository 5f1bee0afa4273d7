package response

import (
	"time"

	"garage_workflow/internal/domain/entities"
)

type InventoryItemResponse struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku,omitempty"`
	Name           string    `json:"name"`
	UnitPrice      string    `json:"unit_price"`
	StockOnHand    int64     `json:"stock_on_hand"`
	StockReserved  int64     `json:"stock_reserved"`
	StockAvailable int64     `json:"stock_available"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:             i.ID,
		SKU:            i.SKU,
		Name:           i.Name,
		UnitPrice:      money(i.UnitPrice),
		StockOnHand:    i.StockOnHand,
		StockReserved:  i.StockReserved,
		StockAvailable: i.StockAvailable(),
		UpdatedAt:      i.UpdatedAt,
	}
}

package response

import (
	"time"

	"garage_workflow/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateID     string    `json:"estimate_id"`
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	Subtotal       string    `json:"subtotal"`
	TaxAmount      string    `json:"tax_amount"`
	DiscountAmount string    `json:"discount_amount"`
	TotalAmount    string    `json:"total_amount"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		EstimateID:     e.ID,
		ID:             e.ID,
		JobID:          e.JobID,
		Subtotal:       money(e.Subtotal),
		TaxAmount:      money(e.TaxAmount),
		DiscountAmount: money(e.DiscountAmount),
		TotalAmount:    money(e.TotalAmount),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

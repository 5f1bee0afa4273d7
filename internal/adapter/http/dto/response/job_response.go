package response

import (
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"
)

type JobResponse struct {
	ID            string     `json:"id"`
	JobNumber     string     `json:"job_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	Vehicle       string     `json:"vehicle"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Locked        bool       `json:"locked"`
	TechnicianID  string     `json:"technician_id,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:            j.ID,
		JobNumber:     j.JobNumber,
		CustomerName:  j.CustomerName,
		CustomerEmail: j.CustomerEmail,
		Vehicle:       j.Vehicle,
		Description:   j.Description,
		Status:        string(j.Status),
		Locked:        j.Status.Locked(),
		StartedAt:     j.StartedAt,
		CompletedAt:   j.CompletedAt,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
	if j.TechnicianID != nil {
		res.TechnicianID = *j.TechnicianID
	}
	return res
}

// PaymentRequiredResponse is the 402 body of a refused completion. It tells the caller which invoice to collect.
type PaymentRequiredResponse struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	JobID         string `json:"job_id"`
	JobNumber     string `json:"job_number"`
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	Balance       string `json:"balance"`
}

func FromPaymentRequired(job entities.Job, p usecase.PaymentRequired) PaymentRequiredResponse {
	return PaymentRequiredResponse{
		Code:          "PAYMENT_REQUIRED",
		Message:       "Invoice must be fully paid before the job can be completed",
		JobID:         job.ID,
		JobNumber:     p.JobNumber,
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		Balance:       money(p.Balance),
	}
}

package request

import (
	"strings"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"
)

type CreateJobRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Vehicle       string `json:"vehicle" binding:"required"`
	Description   string `json:"description"`
}

func (r CreateJobRequest) ToCommand() usecase.CreateJobCommand {
	return usecase.CreateJobCommand{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Vehicle:       r.Vehicle,
		Description:   r.Description,
	}
}

type AssignMechanicRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus normalizes the requested status ("Ready " -> ready).
func (r TransitionStatusRequest) ResolveStatus() entities.JobStatus {
	return entities.JobStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

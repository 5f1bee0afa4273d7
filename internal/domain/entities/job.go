package entities

import "time"

// JobStatus is the workflow state of a repair job.
type JobStatus string

const (
	JobStatusReceived  JobStatus = "received"
	JobStatusWorking   JobStatus = "working"
	JobStatusReady     JobStatus = "ready"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// jobTransitions lists every target status reachable from a given status.
// Same-status entries are idempotent retries.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusReceived:  {JobStatusReceived, JobStatusWorking, JobStatusCancelled},
	JobStatusWorking:   {JobStatusReceived, JobStatusWorking, JobStatusReady, JobStatusCancelled},
	JobStatusReady:     {JobStatusWorking, JobStatusReady, JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted: {JobStatusCompleted},
	JobStatusCancelled: {JobStatusCancelled},
}

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// Locked reports whether the job is closed. Closed jobs accept no further changes.
func (s JobStatus) Locked() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// CanTransitionTo reports whether target is listed in the transition table for s.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, t := range jobTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Job is a unit of repair work.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
type Job struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenant_id"`
	JobNumber     string     `json:"job_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Vehicle       string     `json:"vehicle"`
	Description   string     `json:"description"`
	Status        JobStatus  `json:"status"`
	TechnicianID  *string    `json:"technician_id,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// WithStatus returns a copy of j moved to status at now. StartedAt and CompletedAt are set once.
func (j Job) WithStatus(status JobStatus, now time.Time) Job {
	j.Status = status
	j.UpdatedAt = now
	if status == JobStatusWorking && j.StartedAt == nil {
		t := now
		j.StartedAt = &t
	}
	if status == JobStatusCompleted && j.CompletedAt == nil {
		t := now
		j.CompletedAt = &t
	}
	return j
}

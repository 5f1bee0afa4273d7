package entities

// NotificationEventKind identifies the customer-facing event sent after a job transition.
type NotificationEventKind string

const (
	NotificationJobReady     NotificationEventKind = "job_ready"
	NotificationJobDelivered NotificationEventKind = "job_delivered"
)

// NotificationEventFor maps a job status to the event it announces, if any.
func NotificationEventFor(status JobStatus) (NotificationEventKind, bool) {
	switch status {
	case JobStatusReady:
		return NotificationJobReady, true
	case JobStatusCompleted:
		return NotificationJobDelivered, true
	}
	return "", false
}

type NotificationTriggerMode string

const (
	NotificationTriggerAutomatic NotificationTriggerMode = "automatic"
	NotificationTriggerManual    NotificationTriggerMode = "manual"
)

// NotificationSettings is the per-tenant configuration read before dispatching an event.
type NotificationSettings struct {
	Active      bool                    `json:"active"`
	TriggerMode NotificationTriggerMode `json:"trigger_mode"`
}

// SendsAutomatically reports whether transitions should emit events without a manual action.
func (s NotificationSettings) SendsAutomatically() bool {
	return s.Active && s.TriggerMode == NotificationTriggerAutomatic
}

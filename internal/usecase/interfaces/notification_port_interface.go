package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// INotificationPort delivers customer-facing events. The engine calls it best-effort after a committed
// transition; delivery failures never affect the transition result.
type INotificationPort interface {
	SendEventNotification(ctx context.Context, settings entities.NotificationSettings, kind entities.NotificationEventKind, recipient string, params map[string]string) error
}

// INotificationSettingsProvider reads the tenant notification configuration.
type INotificationSettingsProvider interface {
	Get(ctx context.Context, tenantID string) (entities.NotificationSettings, error)
}

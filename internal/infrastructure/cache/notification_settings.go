package cache

import (
	"context"
	"fmt"
	"strconv"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const notificationSettingsKeyFmt = "tenant:%s:notification_settings"

// DefaultNotificationSettings apply to tenants that never configured notifications.
var DefaultNotificationSettings = entities.NotificationSettings{
	Active:      true,
	TriggerMode: entities.NotificationTriggerAutomatic,
}

// NotificationSettingsStore keeps tenant notification settings in a Redis hash with fields active and trigger_mode.
type NotificationSettingsStore struct {
	client redis.Cmdable
}

var _ interfaces.INotificationSettingsProvider = (*NotificationSettingsStore)(nil)

func NewNotificationSettingsStore(client redis.Cmdable) *NotificationSettingsStore {
	return &NotificationSettingsStore{client: client}
}

func (s *NotificationSettingsStore) Get(ctx context.Context, tenantID string) (entities.NotificationSettings, error) {
	fields, err := s.client.HGetAll(ctx, fmt.Sprintf(notificationSettingsKeyFmt, tenantID)).Result()
	if err != nil {
		return entities.NotificationSettings{}, fmt.Errorf("read notification settings tenant %s: %w", tenantID, err)
	}
	return parseNotificationSettings(fields), nil
}

func (s *NotificationSettingsStore) Put(ctx context.Context, tenantID string, settings entities.NotificationSettings) error {
	return s.client.HSet(ctx, fmt.Sprintf(notificationSettingsKeyFmt, tenantID),
		"active", strconv.FormatBool(settings.Active),
		"trigger_mode", string(settings.TriggerMode),
	).Err()
}

// parseNotificationSettings falls back to the defaults field by field.
func parseNotificationSettings(fields map[string]string) entities.NotificationSettings {
	settings := DefaultNotificationSettings
	if v, ok := fields["active"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.Active = b
		}
	}
	switch mode := entities.NotificationTriggerMode(fields["trigger_mode"]); mode {
	case entities.NotificationTriggerAutomatic, entities.NotificationTriggerManual:
		settings.TriggerMode = mode
	}
	return settings
}

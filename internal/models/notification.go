package models

// Notification types
const (
	NotificationWarning = "warning"
	NotificationExpired = "expired"
)

// NotificationDB represents an expiry notification record for a user.
// It is a passive row: nothing in this service schedules or delivers it.
type NotificationDB struct {
	NotificationID   int64  `json:"notification_id" db:"notification_id"`     // Primary key
	ItemID           int64  `json:"item_id" db:"item_id"`                     // Item the notification refers to
	UserID           int64  `json:"user_id" db:"user_id"`                     // Owning user
	NotificationType string `json:"notification_type" db:"notification_type"` // warning or expired
	NotificationDate Date   `json:"notification_date" db:"notification_date"` // Date the condition was observed
	IsRead           bool   `json:"is_read" db:"is_read"`                     // Read flag
}

// NotificationEvent is the message published to Kafka when a
// notification record is created.
type NotificationEvent struct {
	EventID          string `json:"event_id"`          // EventID is a unique identifier for the event.
	UserID           int64  `json:"user_id"`           // UserID is the owner of the notification.
	ItemID           int64  `json:"item_id"`           // ItemID is the item that triggered the notification.
	NotificationType string `json:"notification_type"` // NotificationType is "warning" or "expired".
	Timestamp        int64  `json:"timestamp"`         // Timestamp is the Unix timestamp (in seconds) of the event.
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType tags what happened; the UI uses it for grouping and icons.
type NotificationType string

const (
	NotificationSessionRequested NotificationType = "session_requested"
	NotificationSessionAccepted  NotificationType = "session_accepted"
	NotificationSessionDeclined  NotificationType = "session_declined"
	NotificationSessionCancelled NotificationType = "session_cancelled"
	NotificationSessionCompleted NotificationType = "session_completed"
	NotificationScheduleProposed NotificationType = "schedule_proposed"
	NotificationScheduleConfirmed NotificationType = "schedule_confirmed"
	NotificationScheduleCleared  NotificationType = "schedule_cleared"
	NotificationScheduleReleased NotificationType = "schedule_released"
)

// Notification is an immutable in-store mailbox record, except for the read flag.
// SessionRequestId/SkillId are deep-links for the UI, not ownership references.
type Notification struct {
	Id     uuid.UUID
	UserId uuid.UUID

	Type  NotificationType
	Title string
	Body  string

	SessionRequestId *uuid.UUID
	SkillId          *uuid.UUID

	Metadata datatypes.JSON

	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a provider-owned time window. At most one session
// request may hold a reservation on it at any moment. IsActive=false means
// the slot was either soft-deleted by its owner or consumed by a confirmed
// booking; both are terminal for availability.
type AvailabilitySlot struct {
	Id     uuid.UUID
	UserId uuid.UUID

	StartTime time.Time
	EndTime   time.Time
	Timezone  string

	IsActive bool

	ReservedRequestId *uuid.UUID
	ReservedAt        *time.Time

	CreatedAt time.Time
}

// ReservedBy reports whether the slot currently holds a reservation for requestId.
func (s *AvailabilitySlot) ReservedBy(requestId uuid.UUID) bool {
	return s.ReservedRequestId != nil && *s.ReservedRequestId == requestId
}

// Overlaps applies the half-open interval rule: [start, end) windows conflict
// when existing.start < new.end AND existing.end > new.start. Touching
// boundaries do not overlap.
func (s *AvailabilitySlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

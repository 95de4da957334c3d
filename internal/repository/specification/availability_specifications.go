package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveOnly excludes soft-deleted and consumed slots.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// OverlapsWindow matches slots intersecting [Start, End) under the half-open
// rule: existing.start < new.end AND existing.end > new.start. A slot ending
// exactly when another begins does not conflict.
type OverlapsWindow struct {
	Start time.Time
	End   time.Time
}

func (s OverlapsWindow) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time < ? AND end_time > ?", s.End, s.Start)
}

// ReservedByRequest matches the slot (if any) held by a session request.
type ReservedByRequest struct {
	RequestID uuid.UUID
}

func (s ReservedByRequest) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reserved_request_id = ?", s.RequestID)
}

// FreeOrReservedBy matches slots that are unreserved or held by the given
// request, the candidate set a requester may pick from while proposing.
type FreeOrReservedBy struct {
	RequestID uuid.UUID
}

func (s FreeOrReservedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reserved_request_id IS NULL OR reserved_request_id = ?", s.RequestID)
}

package contract

import (
	"context"
	"time"

	"skillswap-be/internal/entity"
	"skillswap-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	Update(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AvailabilitySlot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AvailabilitySlot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Reserve places a soft hold on the slot for requestID with a single
	// conditional update. It reports false when the slot is gone, inactive,
	// or held by a different request. Re-reserving by the same request is
	// idempotent and reports true.
	Reserve(ctx context.Context, slotID, requestID uuid.UUID, reservedAt time.Time) (bool, error)

	// ReleaseByRequest clears any hold owned by requestID. No-op when none exists.
	ReleaseByRequest(ctx context.Context, requestID uuid.UUID) error

	// Deactivate marks the slot inactive, leaving reservation fields untouched.
	Deactivate(ctx context.Context, slotID uuid.UUID) error
}

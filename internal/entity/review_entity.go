package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is one participant's feedback on a completed session request.
// Uniqueness per (session request, author) is enforced by the store.
type Review struct {
	Id               uuid.UUID
	SessionRequestId uuid.UUID
	FromUserId       uuid.UUID
	ToUserId         uuid.UUID

	Rating  int
	Comment string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

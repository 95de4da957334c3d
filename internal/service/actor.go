package service

import (
	"github.com/google/uuid"

	"skillswap-be/internal/entity"
)

// Actor identifies who is performing an operation. Admins pass every
// participant check.
type Actor struct {
	UserId uuid.UUID
	Role   entity.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.UserRoleAdmin
}

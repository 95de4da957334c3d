package unitofwork

import (
	"context"

	"skillswap-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one transaction. Every state
// transition runs inside a single Begin/Commit so the request mutation, the
// slot mutation and the notification insert land or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SkillRepository() contract.SkillRepository
	SessionRequestRepository() contract.SessionRequestRepository
	AvailabilityRepository() contract.AvailabilityRepository
	NotificationRepository() contract.NotificationRepository
	ReviewRepository() contract.ReviewRepository
}

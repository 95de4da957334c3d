package contract

import (
	"context"

	"skillswap-be/internal/entity"
	"skillswap-be/internal/repository/specification"
)

type SessionRequestRepository interface {
	Create(ctx context.Context, request *entity.SessionRequest) error
	Update(ctx context.Context, request *entity.SessionRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

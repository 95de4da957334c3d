package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	SessionRequestId uuid.UUID `json:"session_request_id" validate:"required"`
	Rating           int       `json:"rating" validate:"required,min=1,max=5"`
	Comment          string    `json:"comment" validate:"max=1000"`
}

type ReviewResponse struct {
	Id               uuid.UUID `json:"id"`
	SessionRequestId uuid.UUID `json:"session_request_id"`
	FromUserId       uuid.UUID `json:"from_user_id"`
	ToUserId         uuid.UUID `json:"to_user_id"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}

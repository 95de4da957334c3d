package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAvailabilityRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Timezone  string `json:"timezone"`
}

type CreateAvailabilityResponse struct {
	Id uuid.UUID `json:"id"`
}

type AvailabilitySlotResponse struct {
	Id                uuid.UUID  `json:"id"`
	UserId            uuid.UUID  `json:"user_id"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           time.Time  `json:"end_time"`
	Timezone          string     `json:"timezone"`
	IsActive          bool       `json:"is_active"`
	ReservedRequestId *uuid.UUID `json:"reserved_request_id"`
}

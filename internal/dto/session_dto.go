package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequestRequest struct {
	SkillId uuid.UUID `json:"skill_id" validate:"required"`
	Message string    `json:"message" validate:"max=500"`
}

type CreateSessionRequestResponse struct {
	Id             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	ScheduleStatus string    `json:"schedule_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type RespondSessionRequest struct {
	Id     uuid.UUID
	Action string `json:"action" validate:"required,oneof=accept decline cancel complete"`
}

type RespondSessionResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// ScheduleSessionRequest carries either a slot reference (slot-based proposal)
// or raw timestamps (free-form proposal). Confirm/clear ignore the payload.
type ScheduleSessionRequest struct {
	Id             uuid.UUID
	Action         string     `json:"action" validate:"required,oneof=propose confirm clear"`
	SlotId         *uuid.UUID `json:"slot_id"`
	ScheduledStart string     `json:"scheduled_start"`
	ScheduledEnd   string     `json:"scheduled_end"`
	Timezone       string     `json:"timezone"`
}

type ScheduleSessionResponse struct {
	Id             uuid.UUID `json:"id"`
	ScheduleStatus string    `json:"schedule_status"`
}

type SessionRequestResponse struct {
	Id             uuid.UUID  `json:"id"`
	SkillId        uuid.UUID  `json:"skill_id"`
	SkillTitle     string     `json:"skill_title"`
	RequesterId    uuid.UUID  `json:"requester_id"`
	ProviderId     uuid.UUID  `json:"provider_id"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	ScheduleStatus string     `json:"schedule_status"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	Timezone       *string    `json:"timezone"`
	CreatedAt      time.Time  `json:"created_at"`
	RespondedAt    *time.Time `json:"responded_at"`
}

type MySessionsResponse struct {
	Made     []*SessionRequestResponse `json:"made"`
	Received []*SessionRequestResponse `json:"received"`
}

// RequestSlotResponse is an availability slot as seen from a session request:
// active, provider-owned, and free or held by this very request.
type RequestSlotResponse struct {
	Id                uuid.UUID  `json:"id"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           time.Time  `json:"end_time"`
	Timezone          string     `json:"timezone"`
	ReservedRequestId *uuid.UUID `json:"reserved_request_id"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the primary lifecycle state of a session request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusCompleted RequestStatus = "completed"
)

// IsTerminal reports whether no further primary transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusDeclined, RequestStatusCancelled, RequestStatusCompleted:
		return true
	}
	return false
}

// ScheduleStatus is the scheduling sub-state, meaningful only while the
// primary status is accepted.
type ScheduleStatus string

const (
	ScheduleStatusNone      ScheduleStatus = "none"
	ScheduleStatusProposed  ScheduleStatus = "proposed"
	ScheduleStatusConfirmed ScheduleStatus = "confirmed"
)

type SessionRequest struct {
	Id          uuid.UUID
	RequesterId uuid.UUID
	ProviderId  uuid.UUID
	SkillId     uuid.UUID

	Message string

	Status         RequestStatus
	ScheduleStatus ScheduleStatus

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Timezone       *string

	CreatedAt   time.Time
	RespondedAt *time.Time
}

// IsParticipant reports whether userId is the requester or the provider.
func (r *SessionRequest) IsParticipant(userId uuid.UUID) bool {
	return userId == r.RequesterId || userId == r.ProviderId
}

// OtherParticipant returns the counterpart of userId in this request.
func (r *SessionRequest) OtherParticipant(userId uuid.UUID) uuid.UUID {
	if userId == r.RequesterId {
		return r.ProviderId
	}
	return r.RequesterId
}

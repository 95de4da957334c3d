package dto

type AdminReportResponse struct {
	Users             int64 `json:"users"`
	Skills            int64 `json:"skills"`
	SessionRequests   int64 `json:"session_requests"`
	ActiveSlots       int64 `json:"active_slots"`
	CompletedSessions int64 `json:"completed_sessions"`
	Reviews           int64 `json:"reviews"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student admin"`
}

type UpdateUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

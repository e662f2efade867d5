package models

import "time"

type Session struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	ClinicianID string    `json:"clinician_id"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

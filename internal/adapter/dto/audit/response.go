package audit

import "github.com/johnquangdev/chief-of-staff/internal/domain/entities"

// AuditResponse is the full calendar audit payload
type AuditResponse struct {
	Summary  entities.AuditSummary  `json:"summary"`
	Meetings []entities.AuditResult `json:"meetings"`
}

// DatesResponse lists the dates the calendar covers
type DatesResponse struct {
	Dates []string `json:"dates"`
}

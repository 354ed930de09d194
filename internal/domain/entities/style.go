package entities

// StyleSeverity weights a style issue when scoring.
type StyleSeverity string

const (
	StyleSeverityHigh   StyleSeverity = "high"
	StyleSeverityMedium StyleSeverity = "medium"
	StyleSeverityLow    StyleSeverity = "low"
)

// StyleIssue is one finding from the communication style checker.
type StyleIssue struct {
	Category   string        `json:"category"`
	Issue      string        `json:"issue"`
	Suggestion string        `json:"suggestion"`
	Severity   StyleSeverity `json:"severity"`
}

// StyleReport is the full result of a style check.
type StyleReport struct {
	Score           int          `json:"score"`
	Issues          []StyleIssue `json:"issues"`
	Summary         string       `json:"summary"`
	ImprovedVersion *string      `json:"improved_version"`
}

package entities

// StrategicValue is the coarse label derived from an alignment score.
type StrategicValue string

const (
	StrategicValueHigh   StrategicValue = "High"
	StrategicValueMedium StrategicValue = "Medium"
	StrategicValueLow    StrategicValue = "Low"
)

// Recommendation tells the user what to do with a meeting.
type Recommendation string

const (
	RecommendationKeep     Recommendation = "Keep"
	RecommendationDelegate Recommendation = "Delegate"
	RecommendationDecline  Recommendation = "Decline"
)

// AuditResult is the scored view of a single meeting. It is recomputed on
// every request and never persisted.
type AuditResult struct {
	Entry          Meeting        `json:"entry"`
	AlignmentScore int            `json:"alignment_score"`
	StrategicValue StrategicValue `json:"strategic_value"`
	Flags          []string       `json:"flags"`
	Recommendation Recommendation `json:"recommendation"`
	OKRRelevance   []string       `json:"okr_relevance"`
}

// AuditSummary aggregates an audit run.
type AuditSummary struct {
	TotalMeetings      int `json:"total_meetings"`
	HighStrategicValue int `json:"high_strategic_value"`
	NeedsAttention     int `json:"needs_attention"`
	HealthScore        int `json:"health_score"`
}

// DailyBriefing is the per-date view of the audit.
type DailyBriefing struct {
	Date                string        `json:"date"`
	TotalMeetings       int           `json:"total_meetings"`
	TotalHours          float64       `json:"total_hours"`
	StrategicHours      float64       `json:"strategic_hours"`
	StrategicPercentage int           `json:"strategic_percentage"`
	Meetings            []AuditResult `json:"meetings"`
}

package entities

// MeetingType classifies a calendar entry. The set below is what the
// audit scorer knows about; any other value is still accepted and scored
// with a default base score.
type MeetingType string

const (
	MeetingTypeArchitecture      MeetingType = "architecture"
	MeetingTypeStrategicPlanning MeetingType = "strategic_planning"
	MeetingTypeBoardPrep         MeetingType = "board_prep"
	MeetingTypeOneOnOne          MeetingType = "one_on_one"
	MeetingTypeHiring            MeetingType = "hiring"
	MeetingTypeInterview         MeetingType = "interview"
	MeetingTypeIncidentReview    MeetingType = "incident_review"
	MeetingTypeExternal          MeetingType = "external"
	MeetingTypeDesignReview      MeetingType = "design_review"
	MeetingTypeSprintCeremony    MeetingType = "sprint_ceremony"
	MeetingTypeStandup           MeetingType = "standup"
	MeetingTypeStatusUpdate      MeetingType = "status_update"
	MeetingTypeVendorDemo        MeetingType = "vendor_demo"
	MeetingTypeAdhoc             MeetingType = "adhoc"
	MeetingTypePrep              MeetingType = "prep"
	MeetingTypeStrategic         MeetingType = "strategic"
)

// MeetingSource identifies where a meeting record came from.
type MeetingSource string

const (
	MeetingSourceCSV    MeetingSource = "csv"
	MeetingSourceGoogle MeetingSource = "google"
	MeetingSourceApple  MeetingSource = "apple"
)

// Meeting is a normalized calendar entry. It is constructed once by a
// source (CSV parser or a calendar connector) and consumed read-only by
// the audit pipeline; dates and times keep the wire format every source
// produces ("2006-01-02" and "15:04").
type Meeting struct {
	ID              int           `json:"id"`
	Title           string        `json:"title"`
	Date            string        `json:"date"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Organizer       string        `json:"organizer"`
	Attendees       []string      `json:"attendees"`
	MeetingType     MeetingType   `json:"meeting_type"`
	Description     string        `json:"description"`
	Recurring       bool          `json:"recurring"`
	Source          MeetingSource `json:"source,omitempty"`
}

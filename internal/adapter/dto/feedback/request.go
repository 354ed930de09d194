package feedback

// CreateRequest records a decision on an audited meeting
type CreateRequest struct {
	MeetingID int     `json:"meeting_id" validate:"required,min=1"`
	Action    string  `json:"action" validate:"required,oneof=keep delegate decline"`
	Notes     *string `json:"notes,omitempty"`
}

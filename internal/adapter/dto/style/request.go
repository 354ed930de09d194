package style

// CheckRequest carries the text to run through the style checker
type CheckRequest struct {
	Text string `json:"text" validate:"required"`
}

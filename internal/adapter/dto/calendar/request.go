package calendar

// AppleConnectRequest carries iCloud CalDAV credentials
type AppleConnectRequest struct {
	AppleID     string `json:"apple_id" validate:"required,email"`
	AppPassword string `json:"app_password" validate:"required"`
}

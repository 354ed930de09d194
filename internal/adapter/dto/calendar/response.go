package calendar

import "github.com/johnquangdev/chief-of-staff/internal/domain/entities"

// EventsResponse wraps events fetched from one calendar source
type EventsResponse struct {
	Events []entities.Meeting `json:"events"`
	Source string             `json:"source"`
}

// ConnectResponse confirms a new calendar connection
type ConnectResponse struct {
	Events    []entities.Meeting `json:"events"`
	Source    string             `json:"source"`
	Connected bool               `json:"connected"`
}

// ImportResponse reports a parsed CSV upload
type ImportResponse struct {
	Imported int                `json:"imported"`
	Meetings []entities.Meeting `json:"meetings"`
}

// SyncResponse is the merged view of every connected source
type SyncResponse struct {
	Meetings []entities.Meeting `json:"meetings"`
	Total    int                `json:"total"`
}

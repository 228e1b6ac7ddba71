// Package sessionapi serves shopping sessions.
package sessionapi

import (
	routeapi "github.com/beka-birhanu/aisle/api/route"
	dmn "github.com/beka-birhanu/aisle/domain"
)

// StartRequest opens a session for a shopping list.
type StartRequest struct {
	Items []routeapi.ItemDTO `json:"items" binding:"required,min=1,dive"`
}

// StartResponse carries the new session and its access token.
type StartResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// SessionResponse is the state of a session.
type SessionResponse struct {
	ID             string     `json:"id"`
	Items          []dmn.Item `json:"items"`
	ItemsCount     int        `json:"itemsCount"`
	CollectedCount int        `json:"collectedCount"`
	Done           bool       `json:"done"`
}

func newSessionResponse(s *dmn.Session) *SessionResponse {
	return &SessionResponse{
		ID:             s.ID.String(),
		Items:          s.Items,
		ItemsCount:     len(s.Items),
		CollectedCount: s.Collected,
		Done:           s.Done(),
	}
}

// Package routeapi serves route computations and the store floor plan.
package routeapi

import dmn "github.com/beka-birhanu/aisle/domain"

// ItemDTO is one shopping list entry as the storefront sends it.
type ItemDTO struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ToItems converts request items to domain items.
func ToItems(dtos []ItemDTO) []dmn.Item {
	items := make([]dmn.Item, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, dmn.Item{ID: d.ID, Name: d.Name})
	}
	return items
}

// RouteRequest asks for the remaining route through a shopping list.
type RouteRequest struct {
	Items          []ItemDTO `json:"items" binding:"dive"`
	CollectedCount int       `json:"collectedCount"`
}

// RouteResponse is the computed route and its drawing.
type RouteResponse struct {
	Success        bool     `json:"success"`
	SVG            string   `json:"svg"`
	Path           []int    `json:"path"`
	Order          []string `json:"order"`
	Target         int      `json:"target"`
	CollectItem    string   `json:"collectItem"`
	ItemsCount     int      `json:"itemsCount"`
	CollectedCount int      `json:"collectedCount"`
	Cost           int64    `json:"cost"`
}

// ErrorResponse reports a failed computation.
type ErrorResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	CollectedCount int    `json:"collectedCount"`
	CollectItem    string `json:"collectItem"`
}

// NewRouteResponse converts a service result to its wire form.
func NewRouteResponse(res *dmn.RouteResult) *RouteResponse {
	return &RouteResponse{
		Success:        true,
		SVG:            res.SVG,
		Path:           res.Path,
		Order:          res.Order,
		Target:         res.Target,
		CollectItem:    res.TargetLabel,
		ItemsCount:     res.ItemsCount,
		CollectedCount: res.Collected,
		Cost:           res.Cost,
	}
}

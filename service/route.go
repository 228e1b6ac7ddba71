package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/aisle/catalog"
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/maze"
	"github.com/beka-birhanu/aisle/render"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/beka-birhanu/aisle/solver"
	"github.com/google/uuid"
)

const (
	defaultComputeTimeout = 5 * time.Second
)

var (
	// ErrTimeout means the route did not finish within the compute budget.
	ErrTimeout = errors.New("route computation timed out")
)

// RouteOptions tunes a RouteService. Zero values take the defaults.
type RouteOptions struct {
	Timeout      time.Duration
	MaxWaypoints int
	Strategy     solver.Strategy
	Cache        i.RouteCache // optional
	Trips        i.TripRepo   // optional
}

// RouteService resolves shopping lists against the catalog, solves the route
// through the store, and draws it.
type RouteService struct {
	maze     *maze.Maze
	catalog  *catalog.Catalog
	renderer *render.Renderer
	logger   i.Logger
	opts     *RouteOptions

	layoutOnce sync.Once
	layout     string
	layoutErr  error
}

var _ i.RouteComputer = &RouteService{}

// NewRouteService creates a RouteService over the given floor plan and catalog.
func NewRouteService(m *maze.Maze, c *catalog.Catalog, r *render.Renderer, logger i.Logger, opts *RouteOptions) (*RouteService, error) {
	if m == nil || c == nil || r == nil || logger == nil {
		return nil, errors.New("route service: maze, catalog, renderer and logger are required")
	}
	if opts == nil {
		opts = &RouteOptions{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultComputeTimeout
	}
	if opts.MaxWaypoints <= 0 {
		opts.MaxWaypoints = solver.DefaultMaxWaypoints
	}

	return &RouteService{
		maze:     m,
		catalog:  c,
		renderer: r,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Compute returns the route through req.Items from stop req.Collected onwards.
func (rs *RouteService) Compute(ctx context.Context, req dmn.RouteRequest) (*dmn.RouteResult, error) {
	if err := dmn.ValidateItems(req.Items); err != nil {
		return nil, err
	}

	key := cacheKey(req)
	if cached, ok := rs.fromCache(ctx, key); ok {
		rs.logger.Info(fmt.Sprintf("route cache hit: items=%d collected=%d", len(req.Items), req.Collected))
		return cached, nil
	}

	plan, err := rs.plan(req.Items)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	solveCtx, cancel := context.WithTimeout(ctx, rs.opts.Timeout)
	defer cancel()

	sol, err := solver.Solve(solveCtx, rs.maze, plan, req.Collected,
		solver.WithMaxWaypoints(rs.opts.MaxWaypoints),
		solver.WithStrategy(rs.opts.Strategy),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rs.logger.Warning(fmt.Sprintf("route over budget: items=%d budget=%s", len(req.Items), rs.opts.Timeout))
			return nil, fmt.Errorf("%w after %s", ErrTimeout, rs.opts.Timeout)
		}
		rs.logger.Warning(fmt.Sprintf("route failed: items=%d collected=%d: %s", len(req.Items), req.Collected, err))
		return nil, err
	}
	elapsed := time.Since(start)

	route := sol.Route
	svg, err := rs.renderer.Render(rs.maze, render.Scene{
		Route:    route.Path,
		Position: route.Start,
		Target:   route.Target.LabelCell,
	})
	if err != nil {
		rs.logger.Error(fmt.Sprintf("rendering route: %s", err))
		return nil, err
	}

	order := make([]string, 0, len(sol.Tour.Waypoints))
	for _, w := range sol.Tour.Waypoints {
		order = append(order, w.ID)
	}
	result := &dmn.RouteResult{
		Path:        route.Path,
		Order:       order,
		Target:      route.Target.LabelCell,
		TargetLabel: route.Target.Label,
		Cost:        route.Cost,
		ItemsCount:  len(req.Items),
		Collected:   req.Collected,
		SVG:         svg.XML(),
	}

	rs.logger.Info(fmt.Sprintf("route computed: items=%d collected=%d cost=%d target=%q in %s",
		len(req.Items), req.Collected, route.Cost, route.Target.Label, elapsed))
	rs.toCache(ctx, key, result)
	rs.recordTrip(req, sol, elapsed)
	return result, nil
}

// Layout returns the floor plan with nothing drawn on it. It is rendered once.
func (rs *RouteService) Layout() (string, error) {
	rs.layoutOnce.Do(func() {
		svg, err := rs.renderer.Render(rs.maze, render.EmptyScene())
		if err != nil {
			rs.layoutErr = err
			return
		}
		rs.layout = svg.XML()
	})
	return rs.layout, rs.layoutErr
}

func (rs *RouteService) plan(items []dmn.Item) (solver.Plan, error) {
	plan := solver.Plan{
		Entrance:  rs.catalog.Entrance(),
		Exit:      rs.catalog.Exit(),
		Waypoints: make([]solver.Waypoint, 0, len(items)),
	}
	for _, it := range items {
		entry, err := rs.catalog.Lookup(it.ID)
		if err != nil {
			return solver.Plan{}, err
		}
		plan.Waypoints = append(plan.Waypoints, solver.Waypoint{
			ID:        it.ID,
			Cell:      entry.Cell,
			Label:     it.Label(),
			LabelCell: entry.LabelCell,
		})
	}
	return plan, nil
}

func (rs *RouteService) fromCache(ctx context.Context, key string) (*dmn.RouteResult, bool) {
	if rs.opts.Cache == nil {
		return nil, false
	}
	data, err := rs.opts.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			rs.logger.Warning(fmt.Sprintf("route cache read: %s", err))
		}
		return nil, false
	}
	var result dmn.RouteResult
	if err := json.Unmarshal(data, &result); err != nil {
		rs.logger.Warning(fmt.Sprintf("route cache decode: %s", err))
		return nil, false
	}
	return &result, true
}

func (rs *RouteService) toCache(ctx context.Context, key string, result *dmn.RouteResult) {
	if rs.opts.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		rs.logger.Warning(fmt.Sprintf("route cache encode: %s", err))
		return
	}
	if err := rs.opts.Cache.Set(ctx, key, data); err != nil {
		rs.logger.Warning(fmt.Sprintf("route cache write: %s", err))
	}
}

func (rs *RouteService) recordTrip(req dmn.RouteRequest, sol *solver.Solution, elapsed time.Duration) {
	if rs.opts.Trips == nil {
		return
	}
	trip := &dmn.Trip{
		ID:        uuid.New(),
		Collected: req.Collected,
		Cost:      sol.Tour.Cost,
		Strategy:  rs.opts.Strategy.String(),
		Elapsed:   elapsed.Microseconds(),
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range req.Items {
		trip.Items = append(trip.Items, it.ID)
	}
	for _, w := range sol.Tour.Waypoints {
		trip.Order = append(trip.Order, w.ID)
	}
	if err := rs.opts.Trips.Save(trip); err != nil {
		rs.logger.Warning(fmt.Sprintf("saving trip %s: %s", trip.ID, err))
	}
}

// cacheKey identifies a request by its items, in order, and the resume count.
func cacheKey(req dmn.RouteRequest) string {
	data, _ := json.Marshal(struct {
		Items     []dmn.Item `json:"items"`
		Collected int        `json:"collected"`
	}{req.Items, req.Collected})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

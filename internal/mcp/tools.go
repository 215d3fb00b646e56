package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/route"
)

type ListLocationsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"category filter: all animals places or dining"`
}

type ListToursInput struct{}

type PlanRouteInput struct {
	LocationIDs []string `json:"location_ids" jsonschema:"catalog ids of the stops to visit"`
}

type RenderRouteInput struct {
	LocationIDs []string `json:"location_ids" jsonschema:"catalog ids of the stops to visit"`
	Width       float64  `json:"width,omitempty" jsonschema:"display width in logical pixels, 0 for the default"`
	DPR         float64  `json:"dpr,omitempty" jsonschema:"device pixel ratio, capped at 2"`
}

type LocationOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Partition string  `json:"partition"`
	Kind      string  `json:"kind,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	HasCoords bool    `json:"has_coords"`
	ViewTime  int     `json:"view_time"`
}

type ListLocationsOutput struct {
	Filter    string           `json:"filter"`
	Locations []LocationOutput `json:"locations"`
}

type TourOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Locations   []string `json:"locations"`
	Duration    int      `json:"duration"`
	Difficulty  string   `json:"difficulty"`
}

type ListToursOutput struct {
	Tours []TourOutput `json:"tours"`
}

type StopOutput struct {
	Order        int    `json:"order"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	DwellMinutes int    `json:"dwell_minutes"`
	WalkToNext   int    `json:"walk_to_next"`
}

type PlanRouteOutput struct {
	Stops      []StopOutput `json:"stops"`
	Unknown    []string     `json:"unknown,omitempty"`
	TotalWalk  int          `json:"total_walk"`
	TotalDwell int          `json:"total_dwell"`
	Total      int          `json:"total"`
}

type RenderRouteOutput struct {
	SVG   string   `json:"svg"`
	Route []string `json:"route"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_locations",
		Description: "List zoo exhibits and facilities matching a category filter",
	}, s.handleListLocations)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_tours",
		Description: "List curated tours",
	}, s.handleListTours)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "plan_route",
		Description: "Order the given stops by nearest-neighbour walking and estimate the visit time",
	}, s.handlePlanRoute)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "render_route",
		Description: "Plan a route over the given stops and return the map as SVG",
	}, s.handleRenderRoute)
}

func (s *Server) handleListLocations(ctx context.Context, req *sdk.CallToolRequest, input ListLocationsInput) (*sdk.CallToolResult, ListLocationsOutput, error) {
	filter := domain.ParseFilter(input.Filter)
	locs, err := s.catalog.ByFilter(ctx, filter)
	if err != nil {
		return nil, ListLocationsOutput{}, err
	}

	output := make([]LocationOutput, 0, len(locs))
	for _, loc := range locs {
		output = append(output, locationOutputFromDomain(loc))
	}
	return nil, ListLocationsOutput{Filter: string(filter), Locations: output}, nil
}

func (s *Server) handleListTours(ctx context.Context, req *sdk.CallToolRequest, input ListToursInput) (*sdk.CallToolResult, ListToursOutput, error) {
	tours, err := s.catalog.Tours(ctx)
	if err != nil {
		return nil, ListToursOutput{}, err
	}

	output := make([]TourOutput, 0, len(tours))
	for _, t := range tours {
		output = append(output, TourOutput{
			Name:        t.Name,
			Description: t.Description,
			Locations:   t.Locations,
			Duration:    t.Duration,
			Difficulty:  t.Difficulty,
		})
	}
	return nil, ListToursOutput{Tours: output}, nil
}

func (s *Server) handlePlanRoute(ctx context.Context, req *sdk.CallToolRequest, input PlanRouteInput) (*sdk.CallToolResult, PlanRouteOutput, error) {
	ordered, unknown, err := s.plan(ctx, input.LocationIDs)
	if err != nil {
		return nil, PlanRouteOutput{}, err
	}

	it := route.ComputeItinerary(ordered)
	stops := make([]StopOutput, 0, len(it.Steps))
	for _, step := range it.Steps {
		stops = append(stops, StopOutput{
			Order:        step.Order,
			ID:           step.Location.ID,
			Name:         step.Location.Name,
			DwellMinutes: step.DwellMinutes,
			WalkToNext:   step.WalkToNext,
		})
	}
	return nil, PlanRouteOutput{
		Stops:      stops,
		Unknown:    unknown,
		TotalWalk:  it.TotalWalk,
		TotalDwell: it.TotalDwell,
		Total:      it.Total,
	}, nil
}

func (s *Server) handleRenderRoute(ctx context.Context, req *sdk.CallToolRequest, input RenderRouteInput) (*sdk.CallToolResult, RenderRouteOutput, error) {
	ordered, _, err := s.plan(ctx, input.LocationIDs)
	if err != nil {
		return nil, RenderRouteOutput{}, err
	}
	svg, err := s.renderer.RenderRoute(ctx, ordered, input.Width, input.DPR)
	if err != nil {
		return nil, RenderRouteOutput{}, err
	}
	return nil, RenderRouteOutput{SVG: string(svg), Route: domain.LocationIDs(ordered)}, nil
}

// plan переводит идентификаторы в локации и строит жадный маршрут.
// Повторы схлопываются, неизвестные идентификаторы возвращаются отдельно.
func (s *Server) plan(ctx context.Context, ids []string) ([]domain.Location, []string, error) {
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("location_ids is required")
	}

	seen := make(map[string]bool, len(ids))
	selection := make([]domain.Location, 0, len(ids))
	var unknown []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		loc, ok, err := s.catalog.ByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		selection = append(selection, loc)
	}
	if len(selection) == 0 {
		return nil, nil, fmt.Errorf("no known locations in %v", ids)
	}

	ordered := route.Greedy(selection, s.distance)
	s.logger.Debug("Route planned",
		zap.Int("stops", len(ordered)),
		zap.Strings("unknown", unknown))
	return ordered, unknown, nil
}

func locationOutputFromDomain(loc domain.Location) LocationOutput {
	out := LocationOutput{
		ID:        loc.ID,
		Name:      loc.Name,
		Partition: string(loc.Partition),
		Kind:      loc.Category,
		HasCoords: loc.HasCoords(),
		ViewTime:  loc.DwellMinutes(),
	}
	if loc.Partition == domain.PartitionPlace {
		out.Kind = loc.Type
	}
	if loc.Coords != nil {
		out.X = loc.Coords.X
		out.Y = loc.Coords.Y
	}
	return out
}

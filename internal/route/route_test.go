package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoo-visit-planner/internal/domain"
	apperrors "github.com/zoo-visit-planner/internal/pkg/errors"
)

func at(id string, x, y float64) domain.Location {
	return domain.Location{ID: id, Name: id, Coords: &domain.Point{X: x, Y: y}}
}

func TestGreedy_OnALine(t *testing.T) {
	selection := []domain.Location{at("30", 30, 0), at("0", 0, 0), at("10", 10, 0)}

	route := Greedy(selection, PaceDistance)

	assert.Equal(t, []string{"30", "10", "0"}, domain.LocationIDs(route))
}

func TestGreedy_TiesGoToEarliestPoolElement(t *testing.T) {
	selection := []domain.Location{at("start", 0, 0), at("east", 10, 0), at("west", -10, 0)}

	route := Greedy(selection, PaceDistance)

	assert.Equal(t, []string{"start", "east", "west"}, domain.LocationIDs(route))
}

func TestGreedy_IsPermutationAndDeterministic(t *testing.T) {
	selection := []domain.Location{
		at("elephant", 220, 180),
		at("lion", 480, 80),
		at("warthog", 180, 420),
		at("insect", 620, 180),
		at("mospizza", 250, 200),
		{ID: "mystery", Name: "Mystery"},
		at("koala", 280, 280),
	}
	before := domain.LocationIDs(selection)

	first := Greedy(selection, PaceDistance)
	second := Greedy(selection, PaceDistance)

	require.NoError(t, ValidatePermutation(first, selection))
	assert.Equal(t, first, second)
	assert.Equal(t, "elephant", first[0].ID)
	assert.Equal(t, before, domain.LocationIDs(selection), "input must not be mutated")
}

func TestGreedy_Empty(t *testing.T) {
	assert.Empty(t, Greedy(nil, PaceDistance))
}

func TestWalkingMinutes(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Location
		want int
	}{
		{"close points floor to minimum", at("a", 0, 0), at("b", 10, 0), MinWalkMinutes},
		{"same point", at("a", 5, 5), at("b", 5, 5), MinWalkMinutes},
		{"400 units is 5 minutes", at("a", 0, 0), at("b", 400, 0), 5},
		{"rounds to nearest", at("a", 0, 0), at("b", 300, 0), 4},
		{"missing coords", at("a", 0, 0), domain.Location{ID: "b"}, FallbackWalkMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WalkingMinutes(tt.a, tt.b))
		})
	}
}

func TestComputeItinerary_Totals(t *testing.T) {
	a := at("a", 0, 0)
	a.ViewTime = 15
	b := at("b", 400, 0)
	b.ViewTime = 10

	it := ComputeItinerary([]domain.Location{a, b})

	require.Len(t, it.Steps, 2)
	assert.Equal(t, 5, it.TotalWalk)
	assert.Equal(t, 25, it.TotalDwell)
	assert.Equal(t, 30, it.Total)
	assert.Equal(t, 1, it.Steps[0].Order)
	assert.Equal(t, 5, it.Steps[0].WalkToNext)
	assert.Equal(t, 0, it.Steps[1].WalkToNext)
}

func TestComputeItinerary_DefaultDwell(t *testing.T) {
	it := ComputeItinerary([]domain.Location{at("a", 0, 0)})

	assert.Equal(t, domain.DefaultDwellMinutes, it.TotalDwell)
	assert.Equal(t, 0, it.TotalWalk)
	assert.Equal(t, domain.DefaultDwellMinutes, it.Total)
}

func TestPlanner_TogglePairRestoresSelection(t *testing.T) {
	p := NewPlanner(nil)
	p.Toggle(at("lion", 480, 80))
	p.Toggle(at("panda", 520, 220))
	before := p.Selection()

	assert.True(t, p.Toggle(at("koala", 280, 280)))
	assert.False(t, p.Toggle(at("koala", 280, 280)))

	assert.Equal(t, before, p.Selection())
}

func TestPlanner_ToggleRemovesKeepingOrder(t *testing.T) {
	p := NewPlanner(nil)
	for _, id := range []string{"a", "b", "c"} {
		p.Toggle(at(id, 0, 0))
	}

	p.Toggle(at("b", 0, 0))

	assert.Equal(t, []string{"a", "c"}, domain.LocationIDs(p.Selection()))
	assert.False(t, p.IsSelected("b"))
}

func TestPlanner_GenerateRoute_EmptySelection(t *testing.T) {
	p := NewPlanner(nil)
	p.SetRoute([]domain.Location{at("lion", 480, 80)})

	route, err := p.GenerateRoute()

	assert.Nil(t, route)
	assert.ErrorIs(t, err, apperrors.ErrEmptySelection)
	assert.Equal(t, []string{"lion"}, domain.LocationIDs(p.Route()), "previous route is kept")
}

func TestPlanner_GenerateRoute(t *testing.T) {
	p := NewPlanner(nil)
	p.Toggle(at("30", 30, 0))
	p.Toggle(at("0", 0, 0))
	p.Toggle(at("10", 10, 0))

	route, err := p.GenerateRoute()

	require.NoError(t, err)
	assert.Equal(t, []string{"30", "10", "0"}, domain.LocationIDs(route))
	assert.Equal(t, route, p.Route())
	assert.Equal(t, 3, p.Itinerary().Steps[2].Order)
}

func TestPlanner_ReplaceDeduplicates(t *testing.T) {
	p := NewPlanner(nil)
	p.Replace([]domain.Location{at("a", 0, 0), at("b", 1, 1), at("a", 0, 0)})

	assert.Equal(t, []string{"a", "b"}, domain.LocationIDs(p.Selection()))
	assert.Equal(t, 20, p.Summary().EstimatedMinutes)
}

func TestPlanner_Clear(t *testing.T) {
	p := NewPlanner(nil)
	p.Toggle(at("a", 0, 0))
	_, err := p.GenerateRoute()
	require.NoError(t, err)

	p.Clear()

	assert.Empty(t, p.Selection())
	assert.Empty(t, p.Route())
}

func TestValidatePermutation(t *testing.T) {
	sel := []domain.Location{at("a", 0, 0), at("b", 0, 0)}

	assert.NoError(t, ValidatePermutation([]domain.Location{sel[1], sel[0]}, sel))
	assert.Error(t, ValidatePermutation(sel[:1], sel))
	assert.Error(t, ValidatePermutation([]domain.Location{sel[0], at("c", 0, 0)}, sel))
}

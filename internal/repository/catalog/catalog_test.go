package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
)

func TestNewDefault(t *testing.T) {
	repo, err := NewDefault(zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 16)
	assert.Equal(t, "elephant", all[0].ID)
	assert.Equal(t, domain.PartitionAnimal, all[0].Partition)
	assert.Equal(t, "amphitheatre", all[9].ID)
	assert.Equal(t, domain.PartitionPlace, all[9].Partition)

	lion, ok, err := repo.ByID(ctx, "lion")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, lion.ViewTime)
	assert.Equal(t, "Northern Frontier", lion.Enclosure)
	assert.Equal(t, domain.Point{X: 480, Y: 80}, *lion.Coords)

	pizza, ok, err := repo.ByID(ctx, "mospizza")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Mo's Pizza", pizza.Name)
	assert.Equal(t, domain.DefaultDwellMinutes, pizza.DwellMinutes())

	_, ok, err = repo.ByID(ctx, "yeti")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestByFilter(t *testing.T) {
	repo, err := NewDefault(zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		filter domain.Filter
		want   int
	}{
		{domain.FilterAll, 16},
		{domain.FilterAnimals, 9},
		{domain.FilterPlaces, 7},
		{domain.FilterDining, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got, err := repo.ByFilter(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestResolve_DropsUnknown(t *testing.T) {
	repo, err := NewDefault(zap.NewNop())
	require.NoError(t, err)

	got, err := repo.Resolve(context.Background(), []string{"panda", "yeti", "insect"})
	require.NoError(t, err)

	assert.Equal(t, []string{"panda", "insect"}, domain.LocationIDs(got))
}

func TestTours(t *testing.T) {
	repo, err := NewDefault(zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	tours, err := repo.Tours(ctx)
	require.NoError(t, err)
	require.Len(t, tours, 3)
	assert.Equal(t, "Family Fun Tour", tours[0].Name)
	assert.Equal(t, 180, tours[0].Duration)

	tour, ok, err := repo.TourByName(ctx, "quick visit")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"elephant", "giraffe", "panda", "amphitheatre"}, tour.Locations)

	_, ok, err = repo.TourByName(ctx, "Night Safari")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "animals: [\n"},
		{"missing id", "animals:\n  - name: Nameless\n"},
		{"duplicate id", "animals:\n  - id: a\n    name: A\nplaces:\n  - id: a\n    name: B\n"},
		{"outside map", "places:\n  - id: far\n    name: Far\n    coords: {x: 2000, y: 10}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestParse_LocationWithoutCoords(t *testing.T) {
	repo, err := Parse([]byte("places:\n  - id: kiosk\n    name: Kiosk\n"), zap.NewNop())
	require.NoError(t, err)

	kiosk, ok, err := repo.ByID(context.Background(), "kiosk")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, kiosk.HasCoords())
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/repository/memory"
	"github.com/zoo-visit-planner/internal/repository/plans"
	"github.com/zoo-visit-planner/internal/usecase"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

type planFixture struct {
	planner   *usecase.PlannerUseCase
	plans     *usecase.PlanUseCase
	cache     *MockCacheRepository
	publisher *MockEventPublisher
	repo      repository.PlanRepository
	session   string
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	cat := testCatalog(t)
	sessions := usecase.NewSessionStore(time.Hour, nil, zap.NewNop())
	repo := plans.NewPlanRepository(memory.NewKVStore(), "", zap.NewNop())

	f := &planFixture{
		planner:   usecase.NewPlannerUseCase(sessions, cat, zap.NewNop()),
		cache:     &MockCacheRepository{},
		publisher: &MockEventPublisher{},
		repo:      repo,
	}
	f.plans = usecase.NewPlanUseCase(repo, cat, sessions, f.cache, f.publisher, zap.NewNop())
	f.plans.SetClock(func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) })
	f.session = f.planner.CreateSession(context.Background()).SessionID
	return f
}

func TestPlanUseCase_SaveAndList(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	for _, id := range []string{"panda", "lion"} {
		_, err := f.planner.Toggle(ctx, f.session, id)
		require.NoError(t, err)
	}
	_, err := f.planner.GenerateRoute(ctx, f.session)
	require.NoError(t, err)

	f.cache.On("InvalidateStats", mock.Anything).Return(nil)
	f.publisher.On("PublishToStream", mock.Anything, domain.StreamPlanSaved, mock.MatchedBy(func(e domain.PlanSavedEvent) bool {
		return e.PlanID == 1717236000000 && len(e.Route) == 2
	})).Return(nil).Once()

	plan, err := f.plans.Save(ctx, f.session, &dto.SavePlanRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1717236000000), plan.ID)
	assert.Equal(t, domain.DefaultPlanName, plan.Name)
	assert.Equal(t, "2024-06-01", plan.Date)
	assert.Equal(t, 2, plan.Visitors)
	assert.Equal(t, []string{"panda", "lion"}, plan.Locations)
	assert.Equal(t, []string{"panda", "lion"}, plan.Route)

	list, err := f.plans.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, plan.Locations, list.Plans[0].Locations)
	assert.Equal(t, plan.Route, list.Plans[0].Route)

	f.publisher.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestPlanUseCase_SaveCollidingIDs(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	f.cache.On("InvalidateStats", mock.Anything).Return(nil)

	first, err := f.plans.Save(ctx, f.session, &dto.SavePlanRequest{Name: "First"})
	require.NoError(t, err)
	second, err := f.plans.Save(ctx, f.session, &dto.SavePlanRequest{Name: "Second"})
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)

	list, err := f.plans.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", list.Plans[0].Name)

	// Без маршрута событие не публикуется
	f.publisher.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanUseCase_LoadAndDelete(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	f.cache.On("InvalidateStats", mock.Anything).Return(nil)
	f.publisher.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.planner.LoadTour(ctx, f.session, "Quick Visit")
	require.NoError(t, err)
	saved, err := f.plans.Save(ctx, f.session, &dto.SavePlanRequest{Name: "Morning", Visitors: 4})
	require.NoError(t, err)

	other := f.planner.CreateSession(ctx).SessionID
	loaded, err := f.plans.Load(ctx, other, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Locations, domain.LocationIDs(loaded.Selection.Locations))
	assert.Equal(t, saved.Route, domain.LocationIDs(loaded.Route.Route))

	_, err = f.plans.Load(ctx, other, 42)
	assert.ErrorIs(t, err, errors.ErrPlanNotFound)

	require.NoError(t, f.plans.Delete(ctx, saved.ID))
	list, err := f.plans.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestPlanUseCase_LoadWithoutRouteClearsRoute(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	f.cache.On("InvalidateStats", mock.Anything).Return(nil)
	f.publisher.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.planner.Toggle(ctx, f.session, "koala")
	require.NoError(t, err)
	unrouted, err := f.plans.Save(ctx, f.session, &dto.SavePlanRequest{})
	require.NoError(t, err)

	_, err = f.planner.LoadTour(ctx, f.session, "Quick Visit")
	require.NoError(t, err)

	loaded, err := f.plans.Load(ctx, f.session, unrouted.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"koala"}, domain.LocationIDs(loaded.Selection.Locations))
	assert.Empty(t, loaded.Route.Route)
}

func TestPlanUseCase_PublishFailureIsNotFatal(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	f.cache.On("InvalidateStats", mock.Anything).Return(assert.AnError)
	f.publisher.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := f.planner.LoadTour(ctx, f.session, "Quick Visit")
	require.NoError(t, err)

	_, err = f.plans.Save(ctx, f.session, &dto.SavePlanRequest{})
	assert.NoError(t, err)
}

func TestPlanUseCase_LoadRegeneratesMismatchedRoute(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Append(ctx, domain.Plan{
		ID:        7,
		Name:      "Edited elsewhere",
		Locations: []string{"lion", "panda", "giraffe"},
		Route:     []string{"lion", "panda"},
	}))

	loaded, err := f.plans.Load(ctx, f.session, 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"lion", "giraffe", "panda"}, domain.LocationIDs(loaded.Route.Route))
	assert.Equal(t, 3, loaded.Selection.Summary.Count)
}

package plans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/repository/catalog"
	"github.com/zoo-visit-planner/internal/repository/memory"
)

type PlanRepositorySuite struct {
	suite.Suite
	store repository.KVStore
	repo  repository.PlanRepository
	ctx   context.Context
}

func (s *PlanRepositorySuite) SetupTest() {
	s.store = memory.NewKVStore()
	s.repo = NewPlanRepository(s.store, "", zap.NewNop())
	s.ctx = context.Background()
}

func samplePlan(id int64, name string, locations ...string) domain.Plan {
	return domain.Plan{
		ID:        id,
		Name:      name,
		Date:      "2024-06-01",
		Visitors:  2,
		Locations: locations,
		Route:     locations,
		Created:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *PlanRepositorySuite) TestListEmpty() {
	plans, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(plans)
	s.Empty(plans)
}

func (s *PlanRepositorySuite) TestAppendThenList() {
	first := samplePlan(1, "Morning", "lion", "panda")
	second := samplePlan(2, "Afternoon", "koala")

	s.Require().NoError(s.repo.Append(s.ctx, first))
	s.Require().NoError(s.repo.Append(s.ctx, second))

	plans, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Plan{first, second}, plans)
}

func (s *PlanRepositorySuite) TestGet() {
	s.Require().NoError(s.repo.Append(s.ctx, samplePlan(5, "Trip", "lion")))

	plan, ok, err := s.repo.Get(s.ctx, 5)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Trip", plan.Name)

	_, ok, err = s.repo.Get(s.ctx, 6)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PlanRepositorySuite) TestDeleteFiltersById() {
	s.Require().NoError(s.repo.Append(s.ctx, samplePlan(1, "A")))
	s.Require().NoError(s.repo.Append(s.ctx, samplePlan(2, "B")))

	s.Require().NoError(s.repo.Delete(s.ctx, 1))
	s.Require().NoError(s.repo.Delete(s.ctx, 99))

	plans, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plans, 1)
	s.Equal(int64(2), plans[0].ID)
}

func (s *PlanRepositorySuite) TestReplaceAll() {
	s.Require().NoError(s.repo.Append(s.ctx, samplePlan(1, "A")))
	s.Require().NoError(s.repo.ReplaceAll(s.ctx, nil))

	raw, err := s.store.Get(s.ctx, DefaultNamespace)
	s.Require().NoError(err)
	s.Equal("[]", string(raw))
}

func (s *PlanRepositorySuite) TestMalformedDocumentReadsAsEmpty() {
	s.Require().NoError(s.store.Set(s.ctx, DefaultNamespace, []byte("{not json")))

	plans, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(plans)

	s.Require().NoError(s.repo.Append(s.ctx, samplePlan(3, "Recovered")))
	plans, err = s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(plans, 1)
}

func (s *PlanRepositorySuite) TestDocumentFormat() {
	s.Require().NoError(s.store.Set(s.ctx, DefaultNamespace, []byte(
		`[{"id":1717236000000,"name":"My Zoo Visit","date":"2024-06-01","visitors":2,"notes":"",`+
			`"locations":["lion","panda"],"route":["lion","panda"],"created":"2024-06-01T10:00:00.000Z"}]`)))

	plans, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plans, 1)
	s.Equal(int64(1717236000000), plans[0].ID)
	s.Equal([]string{"lion", "panda"}, plans[0].Route)
}

func TestPlanRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlanRepositorySuite))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) Set(context.Context, string, []byte) error   { return errors.New("disk gone") }

func TestPlanRepository_StoreErrorsPropagate(t *testing.T) {
	repo := NewPlanRepository(failingStore{}, "custom", zap.NewNop())

	_, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.Append(context.Background(), samplePlan(1, "A")))
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	cat, err := catalog.NewDefault(zap.NewNop())
	require.NoError(t, err)
	plans := NewPlanRepository(memory.NewKVStore(), "", zap.NewNop())
	require.NoError(t, plans.Append(ctx, samplePlan(1, "A", "lion", "panda", "mospizza")))
	require.NoError(t, plans.Append(ctx, samplePlan(2, "B", "lion")))

	stats, err := NewStatsRepository(cat, plans, zap.NewNop()).GetStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 9, stats.Catalog.Animals)
	assert.Equal(t, 7, stats.Catalog.Places)
	assert.Equal(t, 3, stats.Catalog.Tours)
	assert.Equal(t, 2, stats.Catalog.ByType["restaurant"])
	assert.Equal(t, 2, stats.Plans.TotalPlans)
	assert.Equal(t, 4, stats.Plans.TotalVisitors)
	assert.Equal(t, 2.0, stats.Plans.AverageStops)
	require.NotEmpty(t, stats.Plans.MostPlanned)
	assert.Equal(t, domain.LocationCount{LocationID: "lion", Name: "Lions", Count: 2}, stats.Plans.MostPlanned[0])
	assert.Equal(t, "mospizza", stats.Plans.MostPlanned[1].LocationID)
}

package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

//go:embed zoo.yaml
var defaultCatalog []byte

type document struct {
	Animals []domain.Location `yaml:"animals"`
	Places  []domain.Location `yaml:"places"`
	Tours   []domain.Tour     `yaml:"tours"`
}

type catalogRepository struct {
	locations []domain.Location
	index     map[string]int
	tours     []domain.Tour
	logger    *zap.Logger
}

// NewDefault - каталог, встроенный в бинарник
func NewDefault(logger *zap.Logger) (repository.CatalogRepository, error) {
	return Parse(defaultCatalog, logger)
}

// Load читает каталог из YAML-файла
func Load(path string, logger *zap.Logger) (repository.CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return Parse(data, logger)
}

// Parse разбирает YAML-документ каталога
func Parse(data []byte, logger *zap.Logger) (repository.CatalogRepository, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	r := &catalogRepository{
		locations: make([]domain.Location, 0, len(doc.Animals)+len(doc.Places)),
		index:     make(map[string]int, len(doc.Animals)+len(doc.Places)),
		tours:     doc.Tours,
		logger:    logger,
	}

	for _, a := range doc.Animals {
		a.Partition = domain.PartitionAnimal
		if err := r.add(a); err != nil {
			return nil, err
		}
	}
	for _, p := range doc.Places {
		p.Partition = domain.PartitionPlace
		if err := r.add(p); err != nil {
			return nil, err
		}
	}

	logger.Debug("Catalog loaded",
		zap.Int("animals", len(doc.Animals)),
		zap.Int("places", len(doc.Places)),
		zap.Int("tours", len(doc.Tours)))

	return r, nil
}

func (r *catalogRepository) add(loc domain.Location) error {
	if strings.TrimSpace(loc.ID) == "" {
		return fmt.Errorf("loading catalog: location %q has no id", loc.Name)
	}
	if _, dup := r.index[loc.ID]; dup {
		return fmt.Errorf("loading catalog: duplicate location id %q", loc.ID)
	}
	if loc.Coords != nil && !domain.LogicalBounds().Contains(*loc.Coords) {
		return fmt.Errorf("loading catalog: location %q lies outside the %vx%v map",
			loc.ID, domain.LogicalWidth, domain.LogicalHeight)
	}
	r.index[loc.ID] = len(r.locations)
	r.locations = append(r.locations, loc)
	return nil
}

func (r *catalogRepository) All(ctx context.Context) ([]domain.Location, error) {
	out := make([]domain.Location, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *catalogRepository) ByID(ctx context.Context, id string) (domain.Location, bool, error) {
	i, ok := r.index[id]
	if !ok {
		return domain.Location{}, false, nil
	}
	return r.locations[i], true, nil
}

func (r *catalogRepository) ByFilter(ctx context.Context, filter domain.Filter) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(r.locations))
	for _, l := range r.locations {
		if filter.Match(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *catalogRepository) Resolve(ctx context.Context, ids []string) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(ids))
	for _, id := range ids {
		i, ok := r.index[id]
		if !ok {
			r.logger.Debug("Skipping unknown location id", zap.String("id", id))
			continue
		}
		out = append(out, r.locations[i])
	}
	return out, nil
}

func (r *catalogRepository) Tours(ctx context.Context) ([]domain.Tour, error) {
	out := make([]domain.Tour, len(r.tours))
	copy(out, r.tours)
	return out, nil
}

func (r *catalogRepository) TourByName(ctx context.Context, name string) (domain.Tour, bool, error) {
	for _, t := range r.tours {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, true, nil
		}
	}
	return domain.Tour{}, false, nil
}

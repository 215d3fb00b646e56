package route

import (
	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/pkg/errors"
)

// Planner владеет выбором посетителя и текущим маршрутом.
// Не потокобезопасен: доступ к одному Planner сериализует вызывающая сторона.
type Planner struct {
	selection []domain.Location
	route     []domain.Location
	distance  DistanceFunc
}

// NewPlanner создает пустой Planner; nil distance означает PaceDistance
func NewPlanner(distance DistanceFunc) *Planner {
	if distance == nil {
		distance = PaceDistance
	}
	return &Planner{
		selection: []domain.Location{},
		route:     []domain.Location{},
		distance:  distance,
	}
}

// Toggle добавляет локацию в выбор или убирает её, если она уже выбрана.
// Возвращает true, если локация теперь выбрана.
func (p *Planner) Toggle(loc domain.Location) bool {
	for i, l := range p.selection {
		if l.ID == loc.ID {
			p.selection = append(p.selection[:i], p.selection[i+1:]...)
			return false
		}
	}
	p.selection = append(p.selection, loc)
	return true
}

// IsSelected проверяет, выбрана ли локация
func (p *Planner) IsSelected(id string) bool {
	for _, l := range p.selection {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Selection возвращает копию текущего выбора
func (p *Planner) Selection() []domain.Location {
	return clone(p.selection)
}

// Route возвращает копию текущего маршрута
func (p *Planner) Route() []domain.Location {
	return clone(p.route)
}

// Summary - количество выбранных локаций и суммарное время осмотра
func (p *Planner) Summary() domain.SelectionSummary {
	return domain.Summarize(p.selection)
}

// Replace заменяет выбор (загрузка тура или плана), дубликаты по ID отбрасываются
func (p *Planner) Replace(locs []domain.Location) {
	seen := make(map[string]struct{}, len(locs))
	next := make([]domain.Location, 0, len(locs))
	for _, l := range locs {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		next = append(next, l)
	}
	p.selection = next
}

// SetRoute устанавливает маршрут без пересчёта (восстановление сохранённого плана)
func (p *Planner) SetRoute(route []domain.Location) {
	p.route = clone(route)
}

// Clear сбрасывает выбор и маршрут
func (p *Planner) Clear() {
	p.selection = []domain.Location{}
	p.route = []domain.Location{}
}

// GenerateRoute пересчитывает маршрут по текущему выбору.
// При пустом выборе возвращает ErrEmptySelection и оставляет прежний маршрут.
func (p *Planner) GenerateRoute() ([]domain.Location, error) {
	if len(p.selection) == 0 {
		return nil, errors.ErrEmptySelection
	}
	p.route = Greedy(p.selection, p.distance)
	return p.Route(), nil
}

// Itinerary - расписание по текущему маршруту
func (p *Planner) Itinerary() domain.Itinerary {
	return ComputeItinerary(p.route)
}

func clone(locs []domain.Location) []domain.Location {
	out := make([]domain.Location, len(locs))
	copy(out, locs)
	return out
}

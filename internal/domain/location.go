package domain

// DefaultDwellMinutes - время осмотра по умолчанию, если у локации не задано viewTime
const DefaultDwellMinutes = 10

// Partition - класс маркера на карте
type Partition string

const (
	PartitionAnimal Partition = "animal"
	PartitionPlace  Partition = "place"
)

// Label возвращает подпись раздела для легенды
func (p Partition) Label() string {
	switch p {
	case PartitionAnimal:
		return "Animal"
	case PartitionPlace:
		return "Place"
	default:
		return string(p)
	}
}

// Типы мест, используемые фильтром "dining"
const (
	PlaceTypeRestaurant = "restaurant"
	PlaceTypeCafe       = "cafe"
)

// Location - вольер или объект инфраструктуры зоопарка.
// Coords == nil означает неполные данные: локация участвует в маршруте, но не отрисовывается.
type Location struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Partition   Partition `json:"partition" yaml:"-"`
	Coords      *Point    `json:"coords,omitempty" yaml:"coords"`
	Page        string    `json:"page,omitempty" yaml:"page"`
	Icon        string    `json:"icon,omitempty" yaml:"icon"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Enclosure   string    `json:"enclosure,omitempty" yaml:"location"`
	Category    string    `json:"category,omitempty" yaml:"category"`
	Type        string    `json:"type,omitempty" yaml:"type"`
	ViewTime    int       `json:"view_time,omitempty" yaml:"viewTime"`
}

// DwellMinutes возвращает время осмотра локации в минутах
func (l Location) DwellMinutes() int {
	if l.ViewTime > 0 {
		return l.ViewTime
	}
	return DefaultDwellMinutes
}

// HasCoords проверяет наличие координат
func (l Location) HasCoords() bool {
	return l.Coords != nil
}

// IsDining - ресторан или кафе
func (l Location) IsDining() bool {
	return l.Type == PlaceTypeRestaurant || l.Type == PlaceTypeCafe
}

// LocationIDs возвращает идентификаторы в исходном порядке
func LocationIDs(locs []Location) []string {
	ids := make([]string, len(locs))
	for i, l := range locs {
		ids[i] = l.ID
	}
	return ids
}

// SelectionSummary - сводка по текущему выбору
type SelectionSummary struct {
	Count            int `json:"count"`
	EstimatedMinutes int `json:"estimated_minutes"`
}

// Summarize считает количество локаций и суммарное время осмотра
func Summarize(locs []Location) SelectionSummary {
	s := SelectionSummary{Count: len(locs)}
	for _, l := range locs {
		s.EstimatedMinutes += l.DwellMinutes()
	}
	return s
}

package domain

import "strings"

// Filter - категория отображения каталога
type Filter string

const (
	FilterAll     Filter = "all"
	FilterAnimals Filter = "animals"
	FilterPlaces  Filter = "places"
	FilterDining  Filter = "dining"
)

// ParseFilter разбирает значение фильтра, неизвестные значения дают FilterAll
func ParseFilter(s string) Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "animals", "animal":
		return FilterAnimals
	case "places", "place":
		return FilterPlaces
	case "dining", "restaurant", "restaurants":
		return FilterDining
	default:
		return FilterAll
	}
}

// Match проверяет, проходит ли локация фильтр
func (f Filter) Match(l Location) bool {
	switch f {
	case FilterAnimals:
		return l.Partition == PartitionAnimal
	case FilterPlaces:
		return l.Partition == PartitionPlace
	case FilterDining:
		return l.IsDining()
	default:
		return true
	}
}

package domain

// Tour - заранее подготовленный маршрут
type Tour struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Locations   []string `json:"locations" yaml:"locations"`
	Duration    int      `json:"duration" yaml:"duration"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
}

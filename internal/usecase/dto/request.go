package dto

// ToggleSelectionRequest - добавить локацию в выбор или убрать её
type ToggleSelectionRequest struct {
	LocationID string `json:"location_id" validate:"required,max=64"`
}

// LoadTourRequest - заменить выбор локациями тура
type LoadTourRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SavePlanRequest - сохранение текущего выбора и маршрута как плана.
// Пустые поля заполняются значениями по умолчанию.
type SavePlanRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Date     string `json:"date" validate:"plan_date"` // YYYY-MM-DD
	Visitors int    `json:"visitors" validate:"omitempty,min=1,max=50"`
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
}

// MapRequest - параметры поверхности отрисовки
type MapRequest struct {
	Width float64 `query:"width" validate:"omitempty,min=0,max=4096"` // CSS pixels
	DPR   float64 `query:"dpr" validate:"omitempty,min=0,max=8"`
}

// HitTestRequest - координаты клика в пикселях поверхности
type HitTestRequest struct {
	X     float64 `query:"x" validate:"min=0,max=4096"`
	Y     float64 `query:"y" validate:"min=0,max=4096"`
	Width float64 `query:"width" validate:"omitempty,min=0,max=4096"`
	DPR   float64 `query:"dpr" validate:"omitempty,min=0,max=8"`
}

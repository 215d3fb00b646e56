package domain

import (
	"strings"
	"time"
)

const (
	DefaultPlanName     = "My Zoo Visit"
	DefaultPlanVisitors = 2
	PlanDateLayout      = "2006-01-02"
)

// Plan - сохранённый план посещения.
// JSON-ключи совпадают с форматом документа в хранилище.
type Plan struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Visitors  int       `json:"visitors"`
	Notes     string    `json:"notes"`
	Locations []string  `json:"locations"`
	Route     []string  `json:"route"`
	Created   time.Time `json:"created"`
}

// PlanDraft - пользовательский ввод для сохранения плана
type PlanDraft struct {
	Name     string
	Date     string
	Visitors int
	Notes    string
}

// NewPlan собирает план из черновика с подстановкой значений по умолчанию
func NewPlan(draft PlanDraft, selection, route []Location, now time.Time) Plan {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		name = DefaultPlanName
	}
	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = now.Format(PlanDateLayout)
	}
	visitors := draft.Visitors
	if visitors <= 0 {
		visitors = DefaultPlanVisitors
	}

	return Plan{
		ID:        now.UnixMilli(),
		Name:      name,
		Date:      date,
		Visitors:  visitors,
		Notes:     draft.Notes,
		Locations: LocationIDs(selection),
		Route:     LocationIDs(route),
		Created:   now,
	}
}

// ParsePlanDate разбирает дату визита в формате YYYY-MM-DD
func ParsePlanDate(s string) (time.Time, error) {
	return time.Parse(PlanDateLayout, s)
}

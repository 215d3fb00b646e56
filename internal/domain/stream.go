package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamPlanSaved = "stream:plan:saved"
)

// PlanSavedEvent - событие сохранения плана, по нему прогревается кеш карт
type PlanSavedEvent struct {
	EventID uuid.UUID `json:"event_id"`
	PlanID  int64     `json:"plan_id"`
	Name    string    `json:"name"`
	Route   []string  `json:"route"`
}

// HasRoute проверяет, есть ли в событии маршрут для отрисовки
func (e *PlanSavedEvent) HasRoute() bool {
	return len(e.Route) > 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

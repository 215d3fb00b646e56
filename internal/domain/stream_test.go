package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSavedEvent_HasRoute(t *testing.T) {
	tests := []struct {
		name     string
		event    PlanSavedEvent
		expected bool
	}{
		{"route present", PlanSavedEvent{EventID: uuid.New(), PlanID: 1, Route: []string{"lion"}}, true},
		{"empty route", PlanSavedEvent{EventID: uuid.New(), PlanID: 1, Route: []string{}}, false},
		{"nil route", PlanSavedEvent{EventID: uuid.New(), PlanID: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasRoute())
		})
	}
}

func TestPlanSavedEvent_JSONKeys(t *testing.T) {
	id := uuid.New()
	data, err := json.Marshal(PlanSavedEvent{EventID: id, PlanID: 42, Name: "Trip", Route: []string{"lion", "panda"}})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, id.String(), raw["event_id"])
	assert.Equal(t, float64(42), raw["plan_id"])
	assert.Len(t, raw["route"], 2)
}

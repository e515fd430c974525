package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestZoneDensityPercent(t *testing.T) {
	tests := []struct {
		name string
		zone Zone
		want int
	}{
		{
			name: "computed from occupancy",
			zone: Zone{Capacity: Capacity{MaxOccupancy: intPtr(1200), CurrentOccupancy: intPtr(1100), CrowdDensity: 10}},
			want: 92,
		},
		{
			name: "missing current falls back to server value",
			zone: Zone{Capacity: Capacity{MaxOccupancy: intPtr(1200), CrowdDensity: 41.4}},
			want: 41,
		},
		{
			name: "missing max falls back to server value",
			zone: Zone{Capacity: Capacity{CurrentOccupancy: intPtr(50), CrowdDensity: 12}},
			want: 12,
		},
		{
			name: "zero capacity falls back to server value",
			zone: Zone{Capacity: Capacity{MaxOccupancy: intPtr(0), CurrentOccupancy: intPtr(50), CrowdDensity: 7}},
			want: 7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.zone.DensityPercent())
		})
	}
}

func TestStatusForDensity(t *testing.T) {
	assert.Equal(t, ZoneStatusCritical, StatusForDensity(90))
	assert.Equal(t, ZoneStatusCritical, StatusForDensity(120))
	assert.Equal(t, ZoneStatusActive, StatusForDensity(70))
	assert.Equal(t, ZoneStatusActive, StatusForDensity(89))
	assert.Equal(t, ZoneStatusNormal, StatusForDensity(69))
	assert.Equal(t, ZoneStatusNormal, StatusForDensity(0))
}

func TestZoneWithOccupancy(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	zone := Zone{ID: "zone-a", Status: ZoneStatusNormal, Capacity: Capacity{MaxOccupancy: intPtr(1200), CurrentOccupancy: intPtr(100)}}

	updated := zone.WithOccupancy(1100, now)

	require.NotNil(t, updated.Capacity.CurrentOccupancy)
	assert.Equal(t, 1100, *updated.Capacity.CurrentOccupancy)
	assert.Equal(t, float64(92), updated.Capacity.CrowdDensity)
	assert.Equal(t, ZoneStatusCritical, updated.Status)
	assert.Equal(t, now, updated.LastUpdate)
	assert.Equal(t, 100, *zone.Capacity.CurrentOccupancy, "original must stay untouched")
}

func TestResponderAssignIsIdempotent(t *testing.T) {
	r := Responder{ID: "r1", Status: ResponderAvailable}

	r.Assign("inc-1", "4 min")
	r.Assign("inc-1", "4 min")

	require.True(t, r.AssignedTo("inc-1"))
	assert.Equal(t, ResponderEnRoute, r.Status)
	assert.Equal(t, "4 min", *r.ETA)
	assert.NoError(t, r.Validate())
}

func TestResponderReassignWithoutEtaDropsOldEta(t *testing.T) {
	r := Responder{ID: "r1", Status: ResponderAvailable}

	r.Assign("inc-1", "5 min")
	r.Assign("inc-2", "")

	require.True(t, r.AssignedTo("inc-2"))
	assert.Equal(t, ResponderEnRoute, r.Status)
	assert.Nil(t, r.ETA)
}

func TestResponderUnassignClearsEtaAndIncident(t *testing.T) {
	r := Responder{ID: "r1"}
	r.Assign("inc-1", "2 min")

	r.Unassign()

	assert.Nil(t, r.AssignedIncident)
	assert.Nil(t, r.ETA)
	assert.Equal(t, ResponderAvailable, r.Status)
}

func TestResponderValidate(t *testing.T) {
	id := "inc-1"
	r := Responder{ID: "r1", Status: ResponderAvailable, AssignedIncident: &id}
	assert.ErrorIs(t, r.Validate(), ErrAssignmentInconsistent)

	r.Status = ResponderOnScene
	assert.NoError(t, r.Validate())
}

func TestIncidentNormalized(t *testing.T) {
	inc := Incident{Type: "Fire", Status: "ONGOING", Priority: "High", Severity: 9}
	n := inc.Normalized()

	assert.Equal(t, IncidentTypeFire, n.Type)
	assert.Equal(t, IncidentStatusOngoing, n.Status)
	assert.Equal(t, PriorityHigh, n.Priority)
	assert.Equal(t, 0, n.Severity)

	odd := Incident{Status: "closed", Severity: 3}.Normalized()
	assert.Equal(t, IncidentStatusUnknown, odd.Status)
	assert.Equal(t, "neutral", odd.Status.Tone())
	assert.Equal(t, 3, odd.Severity)
}

func TestIncidentUnmarshalToleratesOddTypes(t *testing.T) {
	var items []Incident
	raw := `[
		{"id":"a","type":"fire","status":"active","severity":3},
		{"id":"b","type":7,"status":"weird","severity":2.5},
		{"id":"c","status":{"v":1},"priority":true,"severity":"3"},
		{"id":"d","status":"resolved","severity":4.0}
	]`

	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 4)

	assert.Equal(t, 3, items[0].Severity)
	assert.Equal(t, IncidentTypeFire, items[0].Type)

	b := items[1].Normalized()
	assert.Equal(t, 0, b.Severity)
	assert.Equal(t, IncidentTypeOther, b.Type)
	assert.Equal(t, IncidentStatusUnknown, b.Status)

	c := items[2].Normalized()
	assert.Equal(t, 0, c.Severity)
	assert.Equal(t, IncidentStatusUnknown, c.Status)
	assert.Equal(t, IncidentPriority(""), c.Priority)

	assert.Equal(t, 4, items[3].Severity)
	assert.Equal(t, "d", items[3].ID)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(IncidentStatusActive, IncidentStatusInvestigating))
	assert.True(t, CanTransition(IncidentStatusOngoing, IncidentStatusResolved))
	assert.True(t, CanTransition(IncidentStatusInvestigating, IncidentStatusEscalated))
	assert.True(t, CanTransition(IncidentStatusEscalated, IncidentStatusActive))
	assert.False(t, CanTransition(IncidentStatusResolved, IncidentStatusEscalated))
	assert.False(t, CanTransition(IncidentStatusActive, "closed"))
}

func TestCredentialsRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, Credentials{AccessCode: 127}.Role())
	assert.Equal(t, RoleResponder, Credentials{AccessCode: 3}.Role())
}

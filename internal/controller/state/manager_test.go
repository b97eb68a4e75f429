package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStateLifecycle(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateRegisterName)
	assert.Equal(t, StateRegisterName, sm.GetState(1))

	sm.SetState(1, StateRegisterPhone)
	assert.Equal(t, StateRegisterPhone, sm.GetState(1))

	sm.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
}

func TestManagerSetStateNoneDropsSession(t *testing.T) {
	sm := NewManager()

	sm.SetState(1, StateRegisterName)
	sm.SetData(1, "name", "Juan")

	sm.SetState(1, StateNone)

	assert.Equal(t, StateNone, sm.GetState(1))
	_, ok := sm.GetData(1, "name")
	assert.False(t, ok)
}

func TestManagerDataRoundTrip(t *testing.T) {
	sm := NewManager()

	sm.SetState(5, StateAppointmentDate)
	sm.SetData(5, "appointment_date", "2026-09-04 17:30")

	value, ok := sm.GetData(5, "appointment_date")
	assert.True(t, ok)
	assert.Equal(t, "2026-09-04 17:30", value)

	_, ok = sm.GetData(5, "missing")
	assert.False(t, ok)
}

func TestManagerSessionsAreIsolatedPerUser(t *testing.T) {
	sm := NewManager()

	// Два чата идут по разным диалогам одновременно
	sm.SetState(1, StateRegisterName)
	sm.SetData(1, "name", "Juan")

	sm.SetState(2, StateAppointmentDate)
	sm.SetData(2, "appointment_date", "2026-09-04 17:30")

	assert.Equal(t, StateRegisterName, sm.GetState(1))
	assert.Equal(t, StateAppointmentDate, sm.GetState(2))

	_, leaked := sm.GetData(1, "appointment_date")
	assert.False(t, leaked)
	_, leaked = sm.GetData(2, "name")
	assert.False(t, leaked)

	sm.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Equal(t, StateAppointmentDate, sm.GetState(2))
}

func TestManagerGetAllDataReturnsCopy(t *testing.T) {
	sm := NewManager()

	sm.SetData(1, "name", "Juan")

	data := sm.GetAllData(1)
	data["name"] = "Pedro"

	value, _ := sm.GetData(1, "name")
	assert.Equal(t, "Juan", value)
}

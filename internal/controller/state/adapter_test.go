package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
)

func TestAdapterSharesManagerState(t *testing.T) {
	sm := NewManager()
	adapter := NewAdapter(sm)

	// Состояние, выставленное из callback, видно текстовым обработчикам
	adapter.SetState(1, callbacktypes.UserState(StateRegisterName))
	assert.Equal(t, StateRegisterName, sm.GetState(1))
	assert.Equal(t, callbacktypes.UserState(StateRegisterName), adapter.GetState(1))

	adapter.SetData(1, "name", "Juan")
	value, ok := sm.GetData(1, "name")
	assert.True(t, ok)
	assert.Equal(t, "Juan", value)

	adapter.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
}

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceCollectsAllFields(t *testing.T) {
	step := StepName
	profile := Profile{}
	ok := false

	step, profile, ok = Advance(step, profile, "Juan Pérez")
	require.True(t, ok)
	assert.Equal(t, StepPhone, step)

	step, profile, ok = Advance(step, profile, "+34 600 123 456")
	require.True(t, ok)
	assert.Equal(t, StepEmail, step)

	step, profile, ok = Advance(step, profile, "juan@example.com")
	require.True(t, ok)
	assert.Equal(t, StepAddress, step)

	step, profile, ok = Advance(step, profile, "Calle Mayor 1, Madrid")
	require.True(t, ok)
	assert.Equal(t, StepDone, step)

	assert.Equal(t, Profile{
		Name:    "Juan Pérez",
		Phone:   "+34 600 123 456",
		Email:   "juan@example.com",
		Address: "Calle Mayor 1, Madrid",
	}, profile)
}

func TestAdvanceRejectsEmptyInput(t *testing.T) {
	step, profile, ok := Advance(StepName, Profile{}, "   ")

	assert.False(t, ok)
	assert.Equal(t, StepName, step)
	assert.Equal(t, Profile{}, profile)
}

func TestAdvanceAcceptsMenuKeywordAsFieldValue(t *testing.T) {
	// Активный диалог перехватывает даже текст кнопок меню:
	// "Catálogo" на шаге телефона — это значение поля, а не команда
	step, profile, ok := Advance(StepPhone, Profile{Name: "Ana"}, "🛍️ Catálogo")

	require.True(t, ok)
	assert.Equal(t, StepEmail, step)
	assert.Equal(t, "🛍️ Catálogo", profile.Phone)
}

func TestAdvanceTrimsWhitespace(t *testing.T) {
	_, profile, ok := Advance(StepName, Profile{}, "  María  ")

	require.True(t, ok)
	assert.Equal(t, "María", profile.Name)
}

func TestAdvanceDoneStepIsTerminal(t *testing.T) {
	step, _, ok := Advance(StepDone, Profile{}, "texto")

	assert.False(t, ok)
	assert.Equal(t, StepDone, step)
}

func TestPromptDefinedForEverySteppingState(t *testing.T) {
	for _, step := range []Step{StepName, StepPhone, StepEmail, StepAddress} {
		assert.NotEmpty(t, Prompt(step))
	}
	assert.Empty(t, Prompt(StepDone))
}

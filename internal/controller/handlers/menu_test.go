package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchMenuActionExactButtonLabels(t *testing.T) {
	tests := []struct {
		text string
		want MenuAction
	}{
		{"🔐 Panel Admin", MenuAdminPanel},
		{"📋 Información", MenuProfile},
		{"🛍️ Catálogo", MenuCatalog},
		{"📅 Agendar Cita", MenuAppointment},
		{"🗓 Mis Citas", MenuMyAppointments},
		{"❓ Ayuda", MenuHelp},
		{"📞 Contacto", MenuContact},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchMenuAction(tt.text), tt.text)
	}
}

func TestMatchMenuActionSubstringAnywhere(t *testing.T) {
	// Совпадение по вхождению, а не по полному тексту
	assert.Equal(t, MenuCatalog, MatchMenuAction("quiero ver el Catálogo por favor"))
	assert.Equal(t, MenuHelp, MatchMenuAction("necesito Ayuda"))
}

func TestMatchMenuActionPriorityOrder(t *testing.T) {
	// "Agendar Cita" содержит оба ключа, но выигрывает первый по порядку
	assert.Equal(t, MenuAppointment, MatchMenuAction("Agendar Cita y Mis Citas"))
	// Панель админа проверяется раньше всего остального
	assert.Equal(t, MenuAdminPanel, MatchMenuAction("Panel Admin con Ayuda"))
}

func TestMatchMenuActionNoMatch(t *testing.T) {
	assert.Equal(t, MenuNone, MatchMenuAction("hola"))
	assert.Equal(t, MenuNone, MatchMenuAction(""))
	// Сопоставление регистрозависимое
	assert.Equal(t, MenuNone, MatchMenuAction("catálogo"))
}

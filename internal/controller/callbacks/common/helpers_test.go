package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/columnamoda/store_bot/internal/model"
)

func TestParseIDFromCallback(t *testing.T) {
	id, err := ParseIDFromCallback("cancel_cita:123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	_, err = ParseIDFromCallback("cancel_cita")
	assert.Error(t, err)

	_, err = ParseIDFromCallback("cancel_cita:abc")
	assert.Error(t, err)

	_, err = ParseIDFromCallback("a:b:c")
	assert.Error(t, err)
}

func TestGenerateAgendaImageProducesPNG(t *testing.T) {
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // понедельник

	appointments := []*model.Appointment{
		{ID: 1, UserID: 10, Date: weekStart.Add(10 * time.Hour), Status: model.AppointmentPending},
		{ID: 2, UserID: 11, Date: weekStart.AddDate(0, 0, 2).Add(17 * time.Hour), Status: model.AppointmentConfirmed},
		// вне сетки часов, должна быть молча пропущена
		{ID: 3, UserID: 10, Date: weekStart.Add(3 * time.Hour), Status: model.AppointmentPending},
	}
	names := map[int64]string{10: "Juan", 11: "María"}

	data, err := GenerateAgendaImage(weekStart, appointments, names, "")
	require.NoError(t, err)

	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	require.Greater(t, len(data), len(pngHeader))
	assert.Equal(t, pngHeader, data[:len(pngHeader)])
}

func TestGenerateAgendaImageEmptyWeek(t *testing.T) {
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	data, err := GenerateAgendaImage(weekStart, nil, nil, "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

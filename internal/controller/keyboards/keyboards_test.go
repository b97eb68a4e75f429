package keyboards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenuHidesAdminRowForClients(t *testing.T) {
	menu := MainMenu(false)

	for _, row := range menu.Keyboard {
		for _, button := range row {
			assert.NotEqual(t, LabelAdmin, button.Text)
		}
	}
}

func TestMainMenuShowsAdminRowLast(t *testing.T) {
	menu := MainMenu(true)

	require.NotEmpty(t, menu.Keyboard)
	lastRow := menu.Keyboard[len(menu.Keyboard)-1]
	require.Len(t, lastRow, 1)
	assert.Equal(t, LabelAdmin, lastRow[0].Text)
}

func TestBuilderSkipsEmptyRows(t *testing.T) {
	markup := NewBuilder().
		Row(Button("a", "cb_a")).
		Row().
		Row(Button("b", "cb_b"), Button("c", "cb_c")).
		Build()

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "cb_a", markup.InlineKeyboard[0][0].CallbackData)
	assert.Len(t, markup.InlineKeyboard[1], 2)
}

func TestWebAppButtonCarriesURL(t *testing.T) {
	button := WebAppButton("Ver Catálogo", "https://tienda.example.com/catalog")

	require.NotNil(t, button.WebApp)
	assert.Equal(t, "https://tienda.example.com/catalog", button.WebApp.URL)
	assert.Empty(t, button.CallbackData)
}

package keyboards

import (
	"github.com/columnamoda/store_bot/internal/webapp"
	"github.com/go-telegram/bot/models"
)

// Подписи кнопок главного меню. По ним же работает текстовый роутер,
// поэтому менять их нужно синхронно с handlers.
const (
	LabelProfile        = "📋 Información"
	LabelCatalog        = "🛍️ Catálogo"
	LabelAppointment    = "📅 Agendar Cita"
	LabelMyAppointments = "🗓 Mis Citas"
	LabelHelp           = "❓ Ayuda"
	LabelContact        = "📞 Contacto"
	LabelAdmin          = "🔐 Panel Admin"
)

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder создаёт новый builder клавиатуры
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Build создаёт финальную клавиатуру
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Button создаёт кнопку с callback data
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// WebAppButton создаёт кнопку, открывающую мини-приложение
func WebAppButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:   text,
		WebApp: &models.WebAppInfo{URL: url},
	}
}

// MainMenu возвращает основную reply-клавиатуру.
// Ряд с панелью администратора показывается только админам.
func MainMenu(isAdmin bool) *models.ReplyKeyboardMarkup {
	keyboard := [][]models.KeyboardButton{
		{
			{Text: LabelProfile},
		},
		{
			{Text: LabelCatalog},
			{Text: LabelAppointment},
		},
		{
			{Text: LabelMyAppointments},
		},
		{
			{Text: LabelHelp},
			{Text: LabelContact},
		},
	}

	if isAdmin {
		keyboard = append(keyboard, []models.KeyboardButton{{Text: LabelAdmin}})
	}

	return &models.ReplyKeyboardMarkup{
		Keyboard:       keyboard,
		ResizeKeyboard: true,
	}
}

// WebAppMenu возвращает inline-клавиатуру с мини-приложениями магазина
func WebAppMenu(urls *webapp.URLs) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(WebAppButton("🛍️ Ver Catálogo", urls.Catalog())).
		Row(WebAppButton("📅 Agendar Cita", urls.Appointments())).
		Row(Button("Volver", "back_to_main")).
		Build()
}

// AdminMenu возвращает inline-клавиатуру панели администратора
func AdminMenu(urls *webapp.URLs) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(WebAppButton("🖥️ Panel de Administración", urls.Admin())).
		Row(Button("📦 Productos", "admin_products")).
		Row(Button("🗓 Agenda de la semana", "admin_agenda")).
		Build()
}

// CatalogLink возвращает одиночную кнопку каталога
func CatalogLink(urls *webapp.URLs) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(WebAppButton("Ver Catálogo", urls.Catalog())).
		Build()
}

// AppointmentLink возвращает одиночную кнопку записи на примерку
func AppointmentLink(urls *webapp.URLs) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(WebAppButton("Agendar Cita", urls.Appointments())).
		Build()
}

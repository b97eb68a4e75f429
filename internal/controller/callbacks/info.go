package callbacks

import (
	"context"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const helpText = "🔍 *Centro de Ayuda*\n\n" +
	"Aquí encontrarás información útil sobre cómo usar nuestro bot:\n\n" +
	"• Para ver el catálogo: Toca en 'Catálogo'\n" +
	"• Para agendar una cita: Toca en 'Agendar Cita'\n" +
	"• Para ver tus datos: Toca en 'Información'\n" +
	"• Para contactarnos: Toca en 'Contacto'\n\n" +
	"Si tienes dudas adicionales, no dudes en contactarnos."

const contactText = "📞 *Información de Contacto*\n\n" +
	"Puedes contactarnos a través de los siguientes medios:\n\n" +
	"📱 *Teléfono*: +34 912345678\n" +
	"📧 *Email*: info@tiendaropa.com\n" +
	"🏠 *Dirección*: Calle Principal 123, Madrid\n\n" +
	"Horario de atención:\n" +
	"Lunes a Viernes: 10:00 - 19:00\n" +
	"Sábados: 10:00 - 14:00"

// HandleHelp показывает центр помощи
func HandleHelp(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	editWithBack(ctx, b, callback, helpText)
}

// HandleContact показывает контактную карточку магазина
func HandleContact(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	editWithBack(ctx, b, callback, contactText)
}

// editWithBack редактирует сообщение, добавляя кнопку возврата
func editWithBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	keyboard := keyboards.NewBuilder().
		Row(keyboards.Button("Volver", BackToMain)).
		Build()

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      message.Chat.ID,
		MessageID:   message.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/columnamoda/store_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MenuAction — действие, выбранное по тексту кнопки главного меню
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuAdminPanel
	MenuProfile
	MenuCatalog
	MenuAppointment
	MenuMyAppointments
	MenuHelp
	MenuContact
)

// menuKeywords — упорядоченный список ключевых слов меню.
// Совпадение по подстроке, первый найденный выигрывает: порядок
// важнее "умного" разбора, пересекающиеся подписи исключают друг
// друга именно приоритетом.
var menuKeywords = []struct {
	keyword string
	action  MenuAction
}{
	{"Panel Admin", MenuAdminPanel},
	{"Información", MenuProfile},
	{"Catálogo", MenuCatalog},
	{"Agendar Cita", MenuAppointment},
	{"Mis Citas", MenuMyAppointments},
	{"Ayuda", MenuHelp},
	{"Contacto", MenuContact},
}

// MatchMenuAction сопоставляет свободный текст с пунктом меню
func MatchMenuAction(text string) MenuAction {
	for _, entry := range menuKeywords {
		if strings.Contains(text, entry.keyword) {
			return entry.action
		}
	}
	return MenuNone
}

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

// handleMenuAction исполняет пункт меню, выбранный по тексту сообщения
func (h *Handlers) handleMenuAction(ctx context.Context, b *bot.Bot, update *models.Update, action MenuAction) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	switch action {
	case MenuAdminPanel:
		// Кнопку видят только админы, но роль проверяем ещё раз
		if !h.accessService.IsAdmin(ctx, telegramID) {
			h.sendError(ctx, b, chatID, "No tienes permisos para acceder a esta función.")
			return
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "🔐 *Panel de Administración*\n\nSelecciona una opción:",
			ParseMode:   models.ParseModeMarkdown,
			ReplyMarkup: keyboards.AdminMenu(h.urls),
		})

	case MenuProfile:
		h.showProfile(ctx, b, chatID, telegramID)

	case MenuCatalog:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Puedes explorar nuestro catálogo haciendo clic en el botón a continuación:",
			ReplyMarkup: keyboards.CatalogLink(h.urls),
		})

	case MenuAppointment:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Puedes agendar una cita haciendo clic en el botón, o con el comando /agendar:",
			ReplyMarkup: keyboards.AppointmentLink(h.urls),
		})

	case MenuMyAppointments:
		h.showAppointments(ctx, b, chatID, telegramID)

	case MenuHelp:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      helpText,
			ParseMode: models.ParseModeMarkdown,
		})

	case MenuContact:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      contactText,
			ParseMode: models.ParseModeMarkdown,
		})
	}
}

// showProfile показывает данные клиента или начинает регистрацию, если их нет
func (h *Handlers) showProfile(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	user, err := h.userService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get user profile", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Hubo un problema. Por favor, intenta más tarde.")
		return
	}

	if user == nil {
		h.sendMessage(ctx, b, chatID, "No tenemos tus datos registrados. Vamos a hacerlo ahora.")
		h.startRegistration(ctx, b, chatID, telegramID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      formatProfile(user),
		ParseMode: models.ParseModeMarkdown,
	})
}

// formatProfile форматирует карточку клиента
func formatProfile(user *model.User) string {
	return fmt.Sprintf(
		"📝 *Tu información*\n\n"+
			"*Nombre:* %s\n"+
			"*Teléfono:* %s\n"+
			"*Email:* %s\n"+
			"*Dirección:* %s\n",
		user.Name, user.Phone, user.Email, user.Address)
}

// showAppointments показывает записи пользователя с кнопками отмены
func (h *Handlers) showAppointments(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	appointments, err := h.appointmentService.ListUserAppointments(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to list appointments", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Hubo un problema. Por favor, intenta más tarde.")
		return
	}

	if len(appointments) == 0 {
		h.sendMessage(ctx, b, chatID, "🗓 No tienes citas agendadas.\n\nUsa /agendar para crear una.")
		return
	}

	builder := keyboards.NewBuilder()
	text := "🗓 *Tus citas*\n\n"
	for _, appointment := range appointments {
		text += fmt.Sprintf("• %s — %s\n",
			appointment.Date.Format("02.01.2006 15:04"),
			statusLabel(appointment.Status))

		if appointment.Status != model.AppointmentCancelled {
			builder.Row(keyboards.Button(
				fmt.Sprintf("❌ Cancelar %s", appointment.Date.Format("02.01 15:04")),
				fmt.Sprintf("cancel_cita:%d", appointment.ID)))
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: builder.Build(),
	})
}

// statusLabel переводит статус записи для клиента
func statusLabel(status model.AppointmentStatus) string {
	switch status {
	case model.AppointmentPending:
		return "pendiente"
	case model.AppointmentConfirmed:
		return "confirmada"
	case model.AppointmentCancelled:
		return "cancelada"
	default:
		return string(status)
	}
}

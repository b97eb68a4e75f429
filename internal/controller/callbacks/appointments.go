package callbacks

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/columnamoda/store_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCancelCita отменяет собственную запись пользователя
func HandleCancelCita(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	appointmentID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse appointment id", zap.String("data", callback.Data), zap.Error(err))
		return
	}

	telegramID := callback.From.ID
	appointment, err := h.AppointmentService.CancelOwn(ctx, telegramID, appointmentID)
	if err != nil {
		h.Logger.Error("Failed to cancel appointment",
			zap.Int64("telegram_id", telegramID),
			zap.Int64("appointment_id", appointmentID),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "❌ No se pudo cancelar la cita. Por favor, intenta más tarde.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.Chat.ID,
		Text: fmt.Sprintf("✅ Tu cita del %s ha sido cancelada.",
			appointment.Date.Format("02.01.2006 15:04")),
	})
}

// HandleConfirmCita подтверждает запись (только админ)
func HandleConfirmCita(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	setCitaStatus(ctx, b, callback, h, model.AppointmentConfirmed, "confirmada")
}

// HandleRejectCita отклоняет запись (только админ)
func HandleRejectCita(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	setCitaStatus(ctx, b, callback, h, model.AppointmentCancelled, "rechazada")
}

// setCitaStatus меняет статус записи после проверки роли
func setCitaStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, status model.AppointmentStatus, label string) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	telegramID := callback.From.ID
	if !h.AccessService.IsAdmin(ctx, telegramID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "No tienes permisos para acceder a esta función.",
		})
		return
	}

	appointmentID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse appointment id", zap.String("data", callback.Data), zap.Error(err))
		return
	}

	appointment, err := h.AppointmentService.SetStatus(ctx, appointmentID, status)
	if err != nil {
		h.Logger.Error("Failed to set appointment status",
			zap.Int64("appointment_id", appointmentID),
			zap.String("status", string(status)),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "❌ No se pudo actualizar la cita.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.Chat.ID,
		Text: fmt.Sprintf("✅ Cita del %s %s.",
			appointment.Date.Format("02.01.2006 15:04"), label),
	})
}

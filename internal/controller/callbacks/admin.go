package callbacks

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireAdmin проверяет роль для админских callback
func requireAdmin(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) (*models.Message, bool) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return nil, false
	}

	if !h.AccessService.IsAdmin(ctx, callback.From.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "No tienes permisos para acceder a esta función.",
		})
		return nil, false
	}

	return message, true
}

// HandleAdminProducts показывает список товаров с остатками
func HandleAdminProducts(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message, ok := requireAdmin(ctx, b, callback, h)
	if !ok {
		return
	}

	products, err := h.CatalogService.ListProducts(ctx, nil)
	if err != nil {
		h.Logger.Error("Failed to list products", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "❌ No se pudieron cargar los productos.",
		})
		return
	}

	text := "📦 *Productos*\n\n"
	builder := keyboards.NewBuilder()
	if len(products) == 0 {
		text += "Todavía no hay productos. Usa /addproduct para crear uno."
	} else {
		for _, product := range products {
			text += fmt.Sprintf("• %s — %.2f € (stock: %d)\n",
				product.Name, product.Price, product.Stock)
			builder.Row(keyboards.Button(
				fmt.Sprintf("✏️ Stock: %s", product.Name),
				fmt.Sprintf("%s%d", SetStock, product.ID)))
		}
	}
	keyboard := builder.
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

// HandleSetStock начинает диалог изменения остатка товара
func HandleSetStock(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message, ok := requireAdmin(ctx, b, callback, h)
	if !ok {
		return
	}

	productID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse product id", zap.String("data", callback.Data), zap.Error(err))
		return
	}

	telegramID := callback.From.ID
	h.StateManager.SetData(telegramID, "stock_product_id", productID)
	h.StateManager.SetState(telegramID, callbacktypes.UserState(state.StateProductSetStock))

	h.Logger.Info("Starting stock update dialog",
		zap.Int64("telegram_id", telegramID),
		zap.Int64("product_id", productID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.Chat.ID,
		Text: "📊 ¿Cuántas unidades hay ahora? Envía un número entero no negativo.\n\n" +
			"Para cancelar usa /cancel",
	})
}

// HandleAdminAgenda отправляет картинку с записями текущей недели
func HandleAdminAgenda(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message, ok := requireAdmin(ctx, b, callback, h)
	if !ok {
		return
	}

	appointments, weekStart, err := h.AppointmentService.ListWeek(ctx, time.Now())
	if err != nil {
		h.Logger.Error("Failed to load week appointments", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "❌ No se pudo cargar la agenda.",
		})
		return
	}

	// Имена клиентов для подписей на блоках
	clientNames := make(map[int64]string)
	for _, appointment := range appointments {
		if _, seen := clientNames[appointment.UserID]; seen {
			continue
		}
		user, err := h.UserRepo.GetByID(ctx, appointment.UserID)
		if err != nil || user == nil {
			continue
		}
		clientNames[appointment.UserID] = user.Name
	}

	image, err := common.GenerateAgendaImage(weekStart, appointments, clientNames, h.AgendaFontPath)
	if err != nil {
		h.Logger.Error("Failed to render agenda image", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.Chat.ID,
			Text:   "❌ No se pudo generar la agenda.",
		})
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: message.Chat.ID,
		Photo: &models.InputFileUpload{
			Filename: "agenda.png",
			Data:     bytes.NewReader(image),
		},
		Caption: fmt.Sprintf("🗓 Agenda de la semana: %d citas", len(appointments)),
	})
}

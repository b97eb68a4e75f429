package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/columnamoda/store_bot/internal/controller/flow"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает входящий свободный текст.
// Активный диалог всегда имеет приоритет над текстовым меню: пока
// собирается анкета, даже текст "Catálogo" попадает в поле анкеты,
// а не в роутер меню.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются отдельными handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Info("Handling text message",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateRegisterName, state.StateRegisterPhone, state.StateRegisterEmail, state.StateRegisterAddress:
		h.handleRegistrationStep(ctx, b, update, currentState)
	case state.StateAppointmentDate:
		h.handleAppointmentDateStep(ctx, b, update)
	case state.StateAppointmentNotes:
		h.handleAppointmentNotesStep(ctx, b, update)
	case state.StateProductName, state.StateProductDescription, state.StateProductPrice, state.StateProductStock:
		h.handleProductStep(ctx, b, update, currentState)
	case state.StateProductSetStock:
		h.handleSetStockStep(ctx, b, update)
	case state.StateNone:
		// Без активного диалога текст уходит в меню; нераспознанный
		// текст молча игнорируется
		if action := MatchMenuAction(update.Message.Text); action != MenuNone {
			h.handleMenuAction(ctx, b, update, action)
		} else {
			h.logger.Debug("No menu keyword matched, dropping message",
				zap.Int64("telegram_id", telegramID))
		}
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// Соответствие шагов анкеты состояниям диалога
var registrationStates = map[flow.Step]state.UserState{
	flow.StepName:    state.StateRegisterName,
	flow.StepPhone:   state.StateRegisterPhone,
	flow.StepEmail:   state.StateRegisterEmail,
	flow.StepAddress: state.StateRegisterAddress,
}

func registrationStep(current state.UserState) flow.Step {
	for step, st := range registrationStates {
		if st == current {
			return step
		}
	}
	return flow.StepDone
}

// handleRegistrationStep прогоняет ввод через машину регистрации
func (h *Handlers) handleRegistrationStep(ctx context.Context, b *bot.Bot, update *models.Update, currentState state.UserState) {
	telegramID := update.Message.From.ID
	step := registrationStep(currentState)

	data := h.stateManager.GetAllData(telegramID)
	profile := flow.Profile{
		Name:    asString(data["name"]),
		Phone:   asString(data["phone"]),
		Email:   asString(data["email"]),
		Address: asString(data["address"]),
	}

	next, profile, ok := flow.Advance(step, profile, update.Message.Text)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID, "Por favor, envía un texto no vacío.")
		return
	}

	h.stateManager.SetData(telegramID, "name", profile.Name)
	h.stateManager.SetData(telegramID, "phone", profile.Phone)
	h.stateManager.SetData(telegramID, "email", profile.Email)
	h.stateManager.SetData(telegramID, "address", profile.Address)

	if next != flow.StepDone {
		h.stateManager.SetState(telegramID, registrationStates[next])
		h.sendMessage(ctx, b, update.Message.Chat.ID, flow.Prompt(next))
		return
	}

	h.completeRegistration(ctx, b, update.Message.Chat.ID, telegramID, profile)
}

// completeRegistration сохраняет анкету и показывает главное меню.
// Сессия очищается и при успехе, и при ошибке: повисший диалог хуже,
// чем повторная регистрация.
func (h *Handlers) completeRegistration(ctx context.Context, b *bot.Bot, chatID, telegramID int64, profile flow.Profile) {
	_, err := h.userService.RegisterUser(ctx, telegramID, profile.Name, profile.Phone, profile.Email, profile.Address)

	h.stateManager.ClearState(telegramID)

	isAdmin := h.accessService.IsAdmin(ctx, telegramID)

	if err != nil {
		h.logger.Error("Failed to save user profile",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Hubo un problema al guardar tus datos. Por favor, intenta nuevamente más tarde.",
			ReplyMarkup: keyboards.MainMenu(isAdmin),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "¡Gracias! Tus datos han sido guardados correctamente.",
		ReplyMarkup: keyboards.MainMenu(isAdmin),
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Puedes acceder a nuestros servicios usando estos botones:",
		ReplyMarkup: keyboards.WebAppMenu(h.urls),
	})
}

// handleAppointmentDateStep обрабатывает ввод даты и времени записи
func (h *Handlers) handleAppointmentDateStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	dateText := strings.TrimSpace(update.Message.Text)

	date, err := time.Parse("2006-01-02 15:04", dateText)
	if err != nil {
		h.logger.Warn("Invalid appointment date", zap.String("input", dateText))
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Formato de fecha no válido.\n\n"+
				"Usa AAAA-MM-DD HH:MM, por ejemplo: 2026-09-04 17:30\n\n"+
				"Inténtalo de nuevo o usa /cancel para cancelar.")
		return
	}

	h.stateManager.SetData(telegramID, "appointment_date", dateText)
	h.stateManager.SetState(telegramID, state.StateAppointmentNotes)

	h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"✅ Fecha: %s\n\n"+
			"¿Alguna nota para tu cita? Escríbela, o envía «-» para omitir.",
		date.Format("02.01.2006 15:04")))
}

// handleAppointmentNotesStep завершает диалог записи на примерку
func (h *Handlers) handleAppointmentNotesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	notesText := strings.TrimSpace(update.Message.Text)

	dateData, ok := h.stateManager.GetData(telegramID, "appointment_date")
	if !ok {
		h.logger.Error("Missing appointment date in state", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Se perdieron los datos de la cita. Empieza de nuevo con /agendar.")
		return
	}

	dateText, _ := dateData.(string)
	date, err := time.Parse("2006-01-02 15:04", dateText)
	if err != nil {
		h.logger.Error("Invalid stored appointment date", zap.String("input", dateText))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Se perdieron los datos de la cita. Empieza de nuevo con /agendar.")
		return
	}

	var notes *string
	if notesText != "" && notesText != "-" {
		notes = &notesText
	}

	appointment, err := h.appointmentService.CreateAppointment(ctx, telegramID, date, notes)

	h.stateManager.ClearState(telegramID)

	if err != nil {
		h.logger.Error("Failed to create appointment",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "Hubo un problema al agendar tu cita. Por favor, intenta nuevamente más tarde.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"✅ ¡Cita agendada!\n\n"+
			"📅 Fecha: %s\n"+
			"🎫 Código: %s\n"+
			"Estado: pendiente de confirmación\n\n"+
			"Puedes ver tus citas con /miscitas",
		date.Format("02.01.2006 15:04"),
		appointment.Code))
}

// handleProductStep обрабатывает шаги добавления товара администратором
func (h *Handlers) handleProductStep(ctx context.Context, b *bot.Bot, update *models.Update, currentState state.UserState) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	input := strings.TrimSpace(update.Message.Text)

	switch currentState {
	case state.StateProductName:
		if input == "" {
			h.sendError(ctx, b, chatID, "❌ El nombre no puede estar vacío. Inténtalo de nuevo:")
			return
		}
		h.stateManager.SetData(telegramID, "product_name", input)
		h.stateManager.SetState(telegramID, state.StateProductDescription)
		h.sendMessage(ctx, b, chatID, fmt.Sprintf(
			"✅ Nombre: %s\n\nPaso 2 de 4: Escribe una descripción breve:", input))

	case state.StateProductDescription:
		h.stateManager.SetData(telegramID, "product_description", input)
		h.stateManager.SetState(telegramID, state.StateProductPrice)
		h.sendMessage(ctx, b, chatID, "Paso 3 de 4: ¿Cuál es el precio? (por ejemplo: 49.90)")

	case state.StateProductPrice:
		price, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
		if err != nil || price < 0 {
			h.sendError(ctx, b, chatID, "❌ Precio no válido. Envía un número no negativo, por ejemplo: 49.90")
			return
		}
		h.stateManager.SetData(telegramID, "product_price", price)
		h.stateManager.SetState(telegramID, state.StateProductStock)
		h.sendMessage(ctx, b, chatID, "Paso 4 de 4: ¿Cuántas unidades hay en stock?")

	case state.StateProductStock:
		stock, err := strconv.Atoi(input)
		if err != nil || stock < 0 {
			h.sendError(ctx, b, chatID, "❌ Cantidad no válida. Envía un número entero no negativo.")
			return
		}
		h.completeProduct(ctx, b, chatID, telegramID, stock)
	}
}

// completeProduct сохраняет товар из собранных данных
func (h *Handlers) completeProduct(ctx context.Context, b *bot.Bot, chatID, telegramID int64, stock int) {
	data := h.stateManager.GetAllData(telegramID)
	name := asString(data["product_name"])
	description := asString(data["product_description"])
	price, _ := data["product_price"].(float64)

	product, err := h.catalogService.CreateProduct(ctx, name, description, price, stock)

	h.stateManager.ClearState(telegramID)

	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		h.sendError(ctx, b, chatID, "Hubo un problema al guardar el producto. Por favor, intenta nuevamente más tarde.")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"✅ Producto guardado\n\n"+
			"📦 %s\n"+
			"💰 %.2f €\n"+
			"📊 Stock: %d",
		product.Name, product.Price, product.Stock))
}

// handleSetStockStep обновляет остаток товара из админского диалога
func (h *Handlers) handleSetStockStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	input := strings.TrimSpace(update.Message.Text)

	stock, err := strconv.Atoi(input)
	if err != nil || stock < 0 {
		h.sendError(ctx, b, chatID, "❌ Cantidad no válida. Envía un número entero no negativo.")
		return
	}

	idData, ok := h.stateManager.GetData(telegramID, "stock_product_id")
	productID, _ := idData.(int64)
	if !ok || productID == 0 {
		h.logger.Error("Missing product id in state", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, "❌ Se perdieron los datos del producto. Abre el panel de nuevo.")
		return
	}

	product, err := h.catalogService.UpdateStock(ctx, productID, stock)

	h.stateManager.ClearState(telegramID)

	if err != nil {
		h.logger.Error("Failed to update product stock",
			zap.Int64("product_id", productID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "Hubo un problema al actualizar el stock. Por favor, intenta nuevamente más tarde.")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"✅ Stock actualizado\n\n"+
			"📦 %s\n"+
			"📊 Stock: %d",
		product.Name, product.Stock))
}

// asString достаёт строку из данных сессии
func asString(value interface{}) string {
	text, _ := value.(string)
	return text
}

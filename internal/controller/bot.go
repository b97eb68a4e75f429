package controller

import (
	"context"

	"github.com/columnamoda/store_bot/internal/controller/callbacks"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/handlers"
	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/columnamoda/store_bot/internal/repository"
	"github.com/columnamoda/store_bot/internal/service"
	"github.com/columnamoda/store_bot/internal/webapp"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BotOptions — опции транспорта. Обработчики выполняются синхронно:
// событие дообрабатывается до конца прежде, чем берётся следующее,
// иначе два быстрых сообщения одного чата гоняются за состоянием диалога.
func BotOptions() []bot.Option {
	return []bot.Option{
		bot.WithNotAsyncHandlers(),
	}
}

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	catalogService *service.CatalogService,
	appointmentService *service.AppointmentService,
	accessService *service.AccessService,
	userRepo *repository.UserRepository,
	urls *webapp.URLs,
	agendaFontPath string,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		userService,
		catalogService,
		appointmentService,
		accessService,
		stateManager,
		urls,
		logger,
	)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(&callbacktypes.Handler{
		UserService:        userService,
		CatalogService:     catalogService,
		AppointmentService: appointmentService,
		AccessService:      accessService,
		StateManager:       state.NewAdapter(stateManager),
		URLs:               urls,
		AgendaFontPath:     agendaFontPath,
		Logger:             logger,
		UserRepo:           userRepo,
	})

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики.
// Порядок фиксированный: сначала команды и callback, диалоги и
// текстовое меню разбирает общий текстовый handler последним.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, c.handlers.HandleAdmin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/miscitas", bot.MatchTypeExact, c.handlers.HandleMyAppointments)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/agendar", bot.MatchTypeExact, c.handlers.HandleAgendarStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addproduct", bot.MatchTypeExact, c.handlers.HandleAddProductStart)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Обработчик текстовых сообщений (диалоги + текстовое меню)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Empezar / registrarse"},
		{Command: "help", Description: "❓ Ayuda"},
		{Command: "agendar", Description: "📅 Agendar una cita"},
		{Command: "miscitas", Description: "🗓 Mis citas"},
		{Command: "cancel", Description: "✋ Cancelar la operación actual"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/columnamoda/store_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentStore минимальный доступ к хранилищу записей
type AppointmentStore interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListByUser(ctx context.Context, userID int64) ([]*model.Appointment, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*model.Appointment, error)
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error
}

// UserSource доступ к профилям для привязки записей к клиентам
type UserSource interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

type AppointmentService struct {
	appointmentRepo AppointmentStore
	userRepo        UserSource
	logger          *zap.Logger
}

func NewAppointmentService(
	appointmentRepo AppointmentStore,
	userRepo UserSource,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// CreateAppointment создаёт запись со статусом pending.
// Владелец должен существовать на момент создания.
func (s *AppointmentService) CreateAppointment(ctx context.Context, telegramID int64, date time.Time, notes *string) (*model.Appointment, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d is not registered", telegramID)
	}

	appointment := &model.Appointment{
		UserID: user.ID,
		Date:   date,
		Status: model.AppointmentPending,
		Notes:  notes,
		Code:   uuid.NewString(),
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("Appointment created",
		zap.Int64("appointment_id", appointment.ID),
		zap.Int64("user_id", user.ID),
		zap.Time("date", date),
	)

	return appointment, nil
}

// ListUserAppointments получает записи пользователя по Telegram ID
func (s *AppointmentService) ListUserAppointments(ctx context.Context, telegramID int64) ([]*model.Appointment, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return s.appointmentRepo.ListByUser(ctx, user.ID)
}

// ListWeek получает записи недели, в которую попадает anyDay.
// Вторым значением возвращается понедельник этой недели, чтобы
// вызывающий код рисовал повестку от той же даты, что и запрос.
func (s *AppointmentService) ListWeek(ctx context.Context, anyDay time.Time) ([]*model.Appointment, time.Time, error) {
	monday := WeekStart(anyDay)

	appointments, err := s.appointmentRepo.ListBetween(ctx, monday, monday.AddDate(0, 0, 7))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("list week appointments: %w", err)
	}

	return appointments, monday, nil
}

// WeekStart возвращает понедельник недели данной даты
func WeekStart(anyDay time.Time) time.Time {
	day := time.Date(anyDay.Year(), anyDay.Month(), anyDay.Day(), 0, 0, 0, 0, anyDay.Location())

	daysSinceMonday := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}
	return day.AddDate(0, 0, -daysSinceMonday)
}

// SetStatus меняет статус записи
func (s *AppointmentService) SetStatus(ctx context.Context, appointmentID int64, status model.AppointmentStatus) (*model.Appointment, error) {
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	s.logger.Info("Appointment status changed",
		zap.Int64("appointment_id", appointmentID),
		zap.String("status", string(status)),
	)

	return appointment, nil
}

// CancelOwn отменяет запись, если она принадлежит пользователю
func (s *AppointmentService) CancelOwn(ctx context.Context, telegramID, appointmentID int64) (*model.Appointment, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d is not registered", telegramID)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("appointment %d not found", appointmentID)
	}
	if appointment.UserID != user.ID {
		return nil, fmt.Errorf("appointment %d does not belong to user %d", appointmentID, user.ID)
	}

	return s.SetStatus(ctx, appointmentID, model.AppointmentCancelled)
}

package flow

import "strings"

// Registration — диалог регистрации клиента в виде чистой машины состояний.
// Переходы не знают ни о Telegram, ни о базе: handlers просто прогоняют
// через Advance каждый входящий текст и исполняют результат.

// Step — шаг диалога регистрации
type Step int

const (
	StepName Step = iota
	StepPhone
	StepEmail
	StepAddress
	StepDone
)

// Profile содержит поля анкеты, собранные по шагам
type Profile struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Prompt возвращает вопрос, который нужно задать на данном шаге
func Prompt(step Step) string {
	switch step {
	case StepName:
		return "Por favor, introduce tu nombre completo:"
	case StepPhone:
		return "Gracias. Ahora necesito tu número de teléfono:"
	case StepEmail:
		return "Perfecto. Ahora tu correo electrónico:"
	case StepAddress:
		return "Por último, necesito tu dirección de entrega:"
	default:
		return ""
	}
}

// Advance принимает ввод для текущего шага и возвращает следующий шаг
// и обновлённую анкету. Любая непустая строка принимается как значение
// поля: формат телефона и email не проверяется (осознанное ограничение,
// а не ошибка). Пустой ввод оставляет машину на месте, ok=false.
func Advance(step Step, profile Profile, input string) (Step, Profile, bool) {
	value := strings.TrimSpace(input)
	if value == "" || step == StepDone {
		return step, profile, false
	}

	switch step {
	case StepName:
		profile.Name = value
		return StepPhone, profile, true
	case StepPhone:
		profile.Phone = value
		return StepEmail, profile, true
	case StepEmail:
		profile.Email = value
		return StepAddress, profile, true
	case StepAddress:
		profile.Address = value
		return StepDone, profile, true
	default:
		return step, profile, false
	}
}

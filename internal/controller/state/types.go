package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния регистрации клиента
	StateRegisterName    UserState = "register_name"
	StateRegisterPhone   UserState = "register_phone"
	StateRegisterEmail   UserState = "register_email"
	StateRegisterAddress UserState = "register_address"

	// Состояния записи на примерку
	StateAppointmentDate  UserState = "appointment_date"
	StateAppointmentNotes UserState = "appointment_notes"

	// Состояния добавления товара (админ)
	StateProductName        UserState = "product_name"
	StateProductDescription UserState = "product_description"
	StateProductPrice       UserState = "product_price"
	StateProductStock       UserState = "product_stock"

	// Изменение остатка существующего товара (админ)
	StateProductSetStock UserState = "product_set_stock"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{}
}

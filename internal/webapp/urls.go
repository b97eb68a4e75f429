package webapp

import "strings"

// URLs хранит адреса мини-приложений, отдаваемых клиенту как кнопки.
// Сами приложения живут на внешнем сервере и ботом не обслуживаются.
type URLs struct {
	base string
}

func NewURLs(baseURL string) *URLs {
	return &URLs{base: strings.TrimRight(baseURL, "/")}
}

// Catalog возвращает адрес каталога
func (u *URLs) Catalog() string {
	return u.base + "/catalog"
}

// Appointments возвращает адрес записи на примерку
func (u *URLs) Appointments() string {
	return u.base + "/appointments"
}

// Admin возвращает адрес панели администратора
func (u *URLs) Admin() string {
	return u.base + "/admin"
}

package webapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLs(t *testing.T) {
	u := NewURLs("https://tienda.example.com")

	assert.Equal(t, "https://tienda.example.com/catalog", u.Catalog())
	assert.Equal(t, "https://tienda.example.com/appointments", u.Appointments())
	assert.Equal(t, "https://tienda.example.com/admin", u.Admin())
}

func TestURLsTrimsTrailingSlash(t *testing.T) {
	u := NewURLs("https://tienda.example.com/")

	assert.Equal(t, "https://tienda.example.com/catalog", u.Catalog())
}

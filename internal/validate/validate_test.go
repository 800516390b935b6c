package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "MARIA LOPEZ GARCIA", NormalizeName("  María López García "))
	assert.Equal(t, "JOSE NUNEZ PENA", NormalizeName("josé núñez peña"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestName(t *testing.T) {
	assert.Empty(t, Name("MARIA LOPEZ GARCIA"))
	assert.Empty(t, Name("MARIA DE LA CRUZ"))
	assert.NotEmpty(t, Name(""))
	assert.NotEmpty(t, Name("MARIA LOPEZ"), "needs given name plus two surnames")
	assert.NotEmpty(t, Name("MARIA L GARCIA"), "every part needs two characters")
}

func TestEmail(t *testing.T) {
	assert.Empty(t, Email("cliente@dermasilk.mx"))
	assert.NotEmpty(t, Email(""))
	assert.NotEmpty(t, Email("sin-arroba"))
	assert.NotEmpty(t, Email("a@b"), "needs a dot in the domain")
	assert.NotEmpty(t, Email("con espacio@mail.com"))
}

func TestPhone(t *testing.T) {
	assert.Empty(t, Phone("5512345678"))
	assert.NotEmpty(t, Phone(""))
	assert.NotEmpty(t, Phone("12345"))
	assert.NotEmpty(t, Phone("55123456789"), "eleven digits is too many")
	assert.NotEmpty(t, Phone("55-1234-567"))
}

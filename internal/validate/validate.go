// Package validate holds the field rules shared by the client and
// membership forms. Messages are user-facing and scoped to one field so a
// bad phone never blocks an unrelated email fix.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName strips accents and uppercases, keeping client names
// consistent between the client table and membership records.
func NormalizeName(name string) string {
	out, _, err := transform.String(stripAccents, name)
	if err != nil {
		out = name
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// NormalizeEmail lowercases for case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name requires a full name: given name plus two surnames, each part at
// least two characters.
func Name(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "El nombre es obligatorio"
	}
	parts := strings.Fields(trimmed)
	if len(parts) < 3 {
		return "Ingresa nombre completo (nombre + 2 apellidos mínimo)"
	}
	for _, p := range parts {
		if len([]rune(p)) < 2 {
			return "Cada nombre/apellido debe tener al menos 2 caracteres"
		}
	}
	return ""
}

func Email(email string) string {
	if email == "" {
		return "El email es obligatorio"
	}
	if !emailRe.MatchString(email) {
		return "Ingresa un email válido"
	}
	return ""
}

func Phone(phone string) string {
	if phone == "" {
		return "El teléfono es obligatorio"
	}
	if !phoneRe.MatchString(phone) {
		return "El teléfono debe tener exactamente 10 dígitos"
	}
	return ""
}

// Package i18n holds the user-facing strings in Vietnamese and English.
//
// Message keys are the English text. Printers fall back to the key itself
// when a translation is missing, so English needs no separate table.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported locales.
const (
	LocaleVietnamese = "vi"
	LocaleEnglish    = "en"
)

// DefaultLocale is used when the configured locale is empty or unknown.
const DefaultLocale = LocaleVietnamese

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, vi := range vietnamese {
		// Keys are static; SetString only fails on malformed messages.
		_ = b.SetString(language.Vietnamese, key, vi)
		_ = b.SetString(language.English, key, key)
	}
	return b
}

// Localizer formats messages for one locale.
type Localizer struct {
	locale  string
	printer *message.Printer
}

// New returns a Localizer for locale ("vi" or "en"). Anything else maps to
// DefaultLocale.
func New(locale string) *Localizer {
	locale = Normalize(locale)
	tag := language.Vietnamese
	if locale == LocaleEnglish {
		tag = language.English
	}
	return &Localizer{
		locale:  locale,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Normalize maps user input such as "EN", "en-US" or "vi_VN" to a supported
// locale code.
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, LocaleEnglish):
		return LocaleEnglish
	case strings.HasPrefix(l, LocaleVietnamese):
		return LocaleVietnamese
	default:
		return DefaultLocale
	}
}

// Locale returns the normalized locale code.
func (l *Localizer) Locale() string {
	return l.locale
}

// T translates key and formats it with args.
func (l *Localizer) T(key string, args ...any) string {
	if l == nil {
		return message.NewPrinter(language.English).Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

package i18n

import "strings"

// Locale is one of the four supported language codes.
type Locale string

const (
	Zh Locale = "zh"
	Ja Locale = "ja"
	En Locale = "en"
	It Locale = "it"
)

// Default is served whenever no locale can be resolved.
const Default = Zh

// Locales lists supported locales in header-matching priority order.
var Locales = []Locale{Zh, Ja, En, It}

// Valid reports whether code is a supported locale.
func Valid(code string) bool {
	for _, l := range Locales {
		if string(l) == code {
			return true
		}
	}
	return false
}

// FromPath extracts the locale from a locale-prefixed path such as
// "/ja/wines/red". The second return value is false when the path
// carries no locale segment.
func FromPath(path string) (Locale, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	if Valid(segment) {
		return Locale(segment), true
	}
	return Default, false
}

// FromAcceptLanguage resolves a locale from an Accept-Language header.
// Language tags are matched by prefix in the fixed priority order
// zh, ja, en, it; the first match wins, otherwise Default.
func FromAcceptLanguage(header string) Locale {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		for _, l := range Locales {
			if strings.HasPrefix(tag, string(l)) {
				return l
			}
		}
	}
	return Default
}

// Resolve picks the locale for an inbound request: the path segment when
// present, else the Accept-Language header, else Default.
func Resolve(path, acceptLanguage string) Locale {
	if locale, ok := FromPath(path); ok {
		return locale
	}
	return FromAcceptLanguage(acceptLanguage)
}

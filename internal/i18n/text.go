package i18n

// Text holds one value per supported locale. Embedded into models with a
// gorm embeddedPrefix it reproduces the field_zh/field_ja/field_en/field_it
// column layout.
type Text struct {
	Zh string `gorm:"column:zh" json:"zh"`
	Ja string `gorm:"column:ja" json:"ja"`
	En string `gorm:"column:en" json:"en"`
	It string `gorm:"column:it" json:"it"`
}

// Resolve returns the value for the requested locale, falling back to the
// Chinese value when the locale-specific one is empty. An empty Chinese
// value yields an empty string, never an error.
func (t Text) Resolve(locale Locale) string {
	var value string
	switch locale {
	case Ja:
		value = t.Ja
	case En:
		value = t.En
	case It:
		value = t.It
	default:
		value = t.Zh
	}
	if value == "" {
		return t.Zh
	}
	return value
}

// MergeNonEmpty overlays the non-empty values of incoming onto t. Blank
// incoming values keep whatever is already stored.
func (t Text) MergeNonEmpty(incoming Text) Text {
	if incoming.Zh != "" {
		t.Zh = incoming.Zh
	}
	if incoming.Ja != "" {
		t.Ja = incoming.Ja
	}
	if incoming.En != "" {
		t.En = incoming.En
	}
	if incoming.It != "" {
		t.It = incoming.It
	}
	return t
}

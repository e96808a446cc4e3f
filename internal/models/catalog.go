package models

import "github.com/example/winehouse/internal/i18n"

type Category struct {
	BaseModel
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Name        i18n.Text `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description i18n.Text `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Image       string    `json:"image"`
	SortOrder   int       `json:"sort_order"`
	Wines       []Wine    `json:"wines,omitempty"`
}

type Wine struct {
	BaseModel
	CategoryID     uint        `gorm:"index;not null" json:"category_id"`
	Category       *Category   `json:"category,omitempty"`
	Name           i18n.Text   `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description    i18n.Text   `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Region         i18n.Text   `gorm:"embedded;embeddedPrefix:region_" json:"region"`
	GrapeVariety   i18n.Text   `gorm:"embedded;embeddedPrefix:grape_variety_" json:"grape_variety"`
	Image          string      `json:"image"`
	Price          float64     `json:"price"`
	Year           int         `json:"year"`
	AlcoholContent float64     `json:"alcohol_content"`
	Featured       bool        `json:"featured"`
	SortOrder      int         `json:"sort_order"`
	Prices         []WinePrice `json:"prices,omitempty"`
}

// WinePrice is the country-specific price of a wine. One row per
// (wine_id, country_code) pair.
type WinePrice struct {
	BaseModel
	WineID      uint    `gorm:"uniqueIndex:idx_wine_country;not null" json:"wine_id"`
	CountryCode string  `gorm:"uniqueIndex:idx_wine_country;not null" json:"country_code"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

type Country struct {
	BaseModel
	Code         string    `gorm:"uniqueIndex" json:"code"`
	Name         i18n.Text `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Currency     string    `json:"currency"`
	Symbol       string    `json:"symbol"`
	ExchangeRate float64   `json:"exchange_rate"`
	Active       bool      `json:"active"`
	SortOrder    int       `json:"sort_order"`
}

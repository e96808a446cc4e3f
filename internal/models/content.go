package models

import "github.com/example/winehouse/internal/i18n"

type Story struct {
	BaseModel
	Title     i18n.Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Content   i18n.Text `gorm:"embedded;embeddedPrefix:content_" json:"content"`
	Image     string    `json:"image"`
	SortOrder int       `json:"sort_order"`
}

// HomeHero is one slide of the home page carousel.
type HomeHero struct {
	BaseModel
	Title     i18n.Text `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Subtitle  i18n.Text `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	Image     string    `json:"image"`
	Theme     string    `json:"theme"`
	Link      string    `json:"link"`
	SortOrder int       `json:"sort_order"`
}

type SiteSetting struct {
	BaseModel
	SettingKey string    `gorm:"uniqueIndex" json:"setting_key"`
	Value      i18n.Text `gorm:"embedded;embeddedPrefix:setting_value_" json:"setting_value"`
}

type ContactMessage struct {
	BaseModel
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Message  string `json:"message" form:"message"`
	Language string `json:"language" form:"language"`
}

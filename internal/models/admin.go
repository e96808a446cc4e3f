package models

// Admin is a dashboard account.
type Admin struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
}

// Upload records metadata for a stored file; the file itself lives in the
// public uploads directory.
type Upload struct {
	BaseModel
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

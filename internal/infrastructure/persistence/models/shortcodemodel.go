package models

// ShortCodeModel maps a short lookup code to its application. The code
// carries a global unique index; a collision on insert surfaces as a
// duplicate-key error and the caller regenerates.
type ShortCodeModel struct {
	Code          string `gorm:"primaryKey;size:16"`
	ApplicationID uint   `gorm:"not null;uniqueIndex"`
	GuildID       string `gorm:"size:32;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime;not null"`
}

func (ShortCodeModel) TableName() string {
	return "application_short_codes"
}

package models

type ModmailThreadModel struct {
	ThreadID      string `gorm:"primaryKey;size:32"`
	ApplicationID uint   `gorm:"not null;index"`
	Status        string `gorm:"size:10;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime;not null"`
}

func (ModmailThreadModel) TableName() string {
	return "modmail_threads"
}

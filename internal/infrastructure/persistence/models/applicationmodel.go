package models

type ApplicationModel struct {
	ID             uint   `gorm:"primaryKey"`
	GuildID        string `gorm:"size:32;not null;index"`
	ApplicantID    string `gorm:"size:32;not null;index"`
	ApplicantEmail string `gorm:"size:255"`
	Answers        string `gorm:"type:text;not null"`
	Status         string `gorm:"size:20;not null;index"`
	SubmittedAt    int64  `gorm:"not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ApplicationModel) TableName() string {
	return "applications"
}

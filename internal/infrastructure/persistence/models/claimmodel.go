package models

// ClaimModel uses the application ID as its primary key. Inserting a second
// claim for the same application fails at the constraint, which is the
// mechanism the claim flow relies on for mutual exclusion.
type ClaimModel struct {
	ApplicationID uint   `gorm:"primaryKey;autoIncrement:false"`
	StaffID       string `gorm:"size:32;not null;index"`
	ClaimedAt     int64  `gorm:"not null"`
}

func (ClaimModel) TableName() string {
	return "application_claims"
}

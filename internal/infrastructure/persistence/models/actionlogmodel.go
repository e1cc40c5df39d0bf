package models

type ActionLogModel struct {
	ID            uint   `gorm:"primaryKey"`
	GuildID       string `gorm:"size:32;not null;index:idx_action_logs_guild_time"`
	ApplicationID uint   `gorm:"not null;index"`
	ActorID       string `gorm:"size:32;not null;index"`
	Action        string `gorm:"size:20;not null"`
	Meta          string `gorm:"type:json"`
	CreatedAt     int64  `gorm:"not null;index:idx_action_logs_guild_time"`
}

func (ActionLogModel) TableName() string {
	return "action_logs"
}

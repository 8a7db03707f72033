package models

type TimeSlot struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ExperienceID uint   `gorm:"not null;index" json:"experienceId"`
	Name         string `gorm:"not null" json:"name"`
	StartTime    string `gorm:"not null" json:"startTime"`
	EndTime      string `gorm:"not null" json:"endTime"`
	IsAvailable  bool   `gorm:"not null;default:true" json:"isAvailable"`
}

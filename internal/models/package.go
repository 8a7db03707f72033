package models

type Package struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ExperienceID uint   `gorm:"not null;index" json:"experienceId"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"not null" json:"description"`
	Sessions     int    `gorm:"not null" json:"sessions"`
	Price        int    `gorm:"not null" json:"price"`
	Discount     int    `gorm:"not null;default:0" json:"discount"`
}

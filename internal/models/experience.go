package models

type Experience struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Location    string `gorm:"not null" json:"location"`
	HostName    string `gorm:"not null" json:"hostName"`
	HostBio     string `gorm:"not null" json:"hostBio"`
	HostAvatar  string `gorm:"not null" json:"hostAvatar"`
	ImageURL    string `gorm:"not null" json:"imageUrl"`
	Category    string `gorm:"not null" json:"category"`
	Price       int    `gorm:"not null" json:"price"`
	Duration    int    `gorm:"not null" json:"duration"`
	Rating      string `gorm:"not null" json:"rating"`
	ReviewCount int    `gorm:"not null" json:"reviewCount"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

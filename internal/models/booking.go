package models

import (
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"

	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
)

type Booking struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;index" json:"userId"`
	ExperienceID  uint        `gorm:"not null;index" json:"experienceId"`
	PackageID     *uint       `json:"packageId,omitempty"`
	TimeSlotID    uint        `gorm:"not null" json:"timeSlotId"`
	SelectedDate  string      `gorm:"not null" json:"selectedDate"`
	FullName      string      `gorm:"not null" json:"fullName"`
	Email         string      `gorm:"not null;index" json:"email"`
	Phone         string      `gorm:"not null" json:"phone"`
	PaymentMethod string      `gorm:"not null" json:"paymentMethod"`
	TotalAmount   int         `gorm:"not null" json:"totalAmount"`
	Reference     string      `gorm:"unique;not null" json:"bookingId"`
	Status        string      `gorm:"not null;default:'confirmed'" json:"status"`
	Experience    *Experience `gorm:"foreignKey:ExperienceID" json:"experience,omitempty"`
	Package       *Package    `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	TimeSlot      *TimeSlot   `gorm:"foreignKey:TimeSlotID" json:"timeSlot,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

package storage

import (
	"context"
	"errors"

	"github.com/farellandr/lokly/internal/models"
)

// ErrNotFound signals a missing row. Callers treat it as a normal outcome;
// every other error is a storage fault.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	ListExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id uint) (*models.Experience, error)
	ListExperiencesByCategory(ctx context.Context, category string) ([]models.Experience, error)
	SearchExperiences(ctx context.Context, query string) ([]models.Experience, error)
	CreateExperience(ctx context.Context, experience *models.Experience) error

	ListTimeSlots(ctx context.Context, experienceID uint) ([]models.TimeSlot, error)
	GetTimeSlot(ctx context.Context, id uint) (*models.TimeSlot, error)
	CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error

	ListPackages(ctx context.Context, experienceID uint) ([]models.Package, error)
	GetPackage(ctx context.Context, id uint) (*models.Package, error)
	CreatePackage(ctx context.Context, pkg *models.Package) error

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/farellandr/lokly/internal/models"
)

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&experiences).Error
	return experiences, err
}

func (s *Gorm) GetExperience(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&experience).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &experience, nil
}

func (s *Gorm) ListExperiencesByCategory(ctx context.Context, category string) ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND LOWER(category) = LOWER(?)", true, category).
		Order("id").
		Find(&experiences).Error
	return experiences, err
}

func (s *Gorm) SearchExperiences(ctx context.Context, query string) ([]models.Experience, error) {
	pattern := "%" + query + "%"
	var experiences []models.Experience
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("id").
		Find(&experiences).Error
	return experiences, err
}

func (s *Gorm) CreateExperience(ctx context.Context, experience *models.Experience) error {
	return s.db.WithContext(ctx).Create(experience).Error
}

func (s *Gorm) ListTimeSlots(ctx context.Context, experienceID uint) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	err := s.db.WithContext(ctx).
		Where("experience_id = ? AND is_available = ?", experienceID, true).
		Order("id").
		Find(&slots).Error
	return slots, err
}

func (s *Gorm) GetTimeSlot(ctx context.Context, id uint) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (s *Gorm) CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error {
	return s.db.WithContext(ctx).Create(slot).Error
}

func (s *Gorm) ListPackages(ctx context.Context, experienceID uint) ([]models.Package, error) {
	var packages []models.Package
	err := s.db.WithContext(ctx).Where("experience_id = ?", experienceID).Order("id").Find(&packages).Error
	return packages, err
}

func (s *Gorm) GetPackage(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (s *Gorm) CreatePackage(ctx context.Context, pkg *models.Package) error {
	return s.db.WithContext(ctx).Create(pkg).Error
}

func (s *Gorm) CreateBooking(ctx context.Context, booking *models.Booking) error {
	reference, err := generateReference(func(candidate string) (bool, error) {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Booking{}).Where("reference = ?", candidate).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		return err
	}

	booking.Reference = reference
	booking.Status = models.BookingStatusConfirmed
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *Gorm) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Experience").Preload("Package").Preload("TimeSlot").
		Where("reference = ?", reference).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *Gorm) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Experience").Preload("Package").Preload("TimeSlot").
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Gorm) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Experience").Preload("Package").Preload("TimeSlot").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Gorm) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.firstUser(ctx, "id = ?", id)
}

func (s *Gorm) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.firstUser(ctx, "username = ?", username)
}

func (s *Gorm) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.firstUser(ctx, "email = ?", email)
}

func (s *Gorm) firstUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/farellandr/lokly/internal/models"
)

// Memory keeps everything in maps. It backs tests and local development;
// postgres is the production store.
type Memory struct {
	mu          sync.RWMutex
	experiences map[uint]models.Experience
	timeSlots   map[uint]models.TimeSlot
	packages    map[uint]models.Package
	bookings    map[string]models.Booking
	users       map[uint]models.User
	nextID      uint
}

func NewMemory() *Memory {
	return &Memory{
		experiences: make(map[uint]models.Experience),
		timeSlots:   make(map[uint]models.TimeSlot),
		packages:    make(map[uint]models.Package),
		bookings:    make(map[string]models.Booking),
		users:       make(map[uint]models.User),
		nextID:      1,
	}
}

func (s *Memory) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var experiences []models.Experience
	for _, experience := range s.experiences {
		if experience.IsActive {
			experiences = append(experiences, experience)
		}
	}
	sortByID(experiences, func(e models.Experience) uint { return e.ID })
	return experiences, nil
}

func (s *Memory) GetExperience(ctx context.Context, id uint) (*models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	experience, ok := s.experiences[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &experience, nil
}

func (s *Memory) ListExperiencesByCategory(ctx context.Context, category string) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var experiences []models.Experience
	for _, experience := range s.experiences {
		if experience.IsActive && strings.EqualFold(experience.Category, category) {
			experiences = append(experiences, experience)
		}
	}
	sortByID(experiences, func(e models.Experience) uint { return e.ID })
	return experiences, nil
}

func (s *Memory) SearchExperiences(ctx context.Context, query string) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var experiences []models.Experience
	for _, experience := range s.experiences {
		if !experience.IsActive {
			continue
		}
		haystacks := []string{experience.Title, experience.Description, experience.Location, experience.Category}
		for _, haystack := range haystacks {
			if strings.Contains(strings.ToLower(haystack), needle) {
				experiences = append(experiences, experience)
				break
			}
		}
	}
	sortByID(experiences, func(e models.Experience) uint { return e.ID })
	return experiences, nil
}

func (s *Memory) CreateExperience(ctx context.Context, experience *models.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if experience.ID == 0 {
		experience.ID = s.nextID
		s.nextID++
	} else if experience.ID >= s.nextID {
		s.nextID = experience.ID + 1
	}
	s.experiences[experience.ID] = *experience
	return nil
}

func (s *Memory) ListTimeSlots(ctx context.Context, experienceID uint) ([]models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slots []models.TimeSlot
	for _, slot := range s.timeSlots {
		if slot.ExperienceID == experienceID && slot.IsAvailable {
			slots = append(slots, slot)
		}
	}
	sortByID(slots, func(t models.TimeSlot) uint { return t.ID })
	return slots, nil
}

func (s *Memory) GetTimeSlot(ctx context.Context, id uint) (*models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.timeSlots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &slot, nil
}

func (s *Memory) CreateTimeSlot(ctx context.Context, slot *models.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot.ID == 0 {
		slot.ID = s.nextID
		s.nextID++
	} else if slot.ID >= s.nextID {
		s.nextID = slot.ID + 1
	}
	s.timeSlots[slot.ID] = *slot
	return nil
}

func (s *Memory) ListPackages(ctx context.Context, experienceID uint) ([]models.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var packages []models.Package
	for _, pkg := range s.packages {
		if pkg.ExperienceID == experienceID {
			packages = append(packages, pkg)
		}
	}
	sortByID(packages, func(p models.Package) uint { return p.ID })
	return packages, nil
}

func (s *Memory) GetPackage(ctx context.Context, id uint) (*models.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &pkg, nil
}

func (s *Memory) CreatePackage(ctx context.Context, pkg *models.Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pkg.ID == 0 {
		pkg.ID = s.nextID
		s.nextID++
	} else if pkg.ID >= s.nextID {
		s.nextID = pkg.ID + 1
	}
	s.packages[pkg.ID] = *pkg
	return nil
}

func (s *Memory) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reference, err := generateReference(func(candidate string) (bool, error) {
		_, inUse := s.bookings[candidate]
		return inUse, nil
	})
	if err != nil {
		return err
	}

	booking.ID = s.nextID
	s.nextID++
	booking.Reference = reference
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = time.Now()
	s.bookings[reference] = *booking
	return nil
}

func (s *Memory) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[reference]
	if !ok {
		return nil, ErrNotFound
	}
	s.attachDetails(&booking)
	return &booking, nil
}

func (s *Memory) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.listBookings(func(b models.Booking) bool { return b.Email == email })
}

func (s *Memory) ListBookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.listBookings(func(b models.Booking) bool { return b.UserID == userID })
}

func (s *Memory) listBookings(match func(models.Booking) bool) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []models.Booking
	for _, booking := range s.bookings {
		if match(booking) {
			s.attachDetails(&booking)
			bookings = append(bookings, booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// attachDetails mirrors the preloaded associations of the postgres store.
// Caller must hold at least the read lock.
func (s *Memory) attachDetails(booking *models.Booking) {
	if experience, ok := s.experiences[booking.ExperienceID]; ok {
		booking.Experience = &experience
	}
	if booking.PackageID != nil {
		if pkg, ok := s.packages[*booking.PackageID]; ok {
			booking.Package = &pkg
		}
	}
	if slot, ok := s.timeSlots[booking.TimeSlotID]; ok {
		booking.TimeSlot = &slot
	}
}

func (s *Memory) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *Memory) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Memory) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Username == username })
}

func (s *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Email == email })
}

func (s *Memory) findUser(match func(models.User) bool) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if match(user) {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func sortByID[T any](items []T, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

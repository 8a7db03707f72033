package storage

import (
	"context"

	"github.com/farellandr/lokly/internal/models"
)

// Seed loads the launch catalog when the store is empty. Safe to run on
// every start.
func Seed(ctx context.Context, s Storage) error {
	existing, err := s.ListExperiences(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	experiences := []models.Experience{
		{
			ID:          1,
			Title:       "Traditional Kathak Dance Class",
			Description: "Immerse yourself in the rhythmic world of Kathak, one of India's most graceful classical dance forms. In this beginner-friendly session, you'll learn the fundamental footwork, hand gestures, and expressions that make Kathak so captivating.",
			Location:    "Shivpuri Colony, Varanasi",
			HostName:    "Meera Sharma",
			HostBio:     "Professional Kathak dancer for 15+ years",
			HostAvatar:  "https://images.unsplash.com/photo-1494790108755-2616c6106130?auto=format&fit=crop&w=150&h=150",
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=400&h=300",
			Category:    "Dance",
			Price:       59900,
			Duration:    120,
			Rating:      "4.8",
			ReviewCount: 124,
			IsActive:    true,
		},
		{
			ID:          2,
			Title:       "Authentic Banarasi Cooking",
			Description: "Learn the secrets of traditional Banarasi cuisine with our expert chef. This hands-on cooking class will teach you to prepare authentic local dishes using traditional techniques and spices.",
			Location:    "Old City, Varanasi",
			HostName:    "Chef Rajesh Kumar",
			HostBio:     "Master chef specializing in Banarasi cuisine for 20+ years",
			HostAvatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=150&h=150",
			ImageURL:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?auto=format&fit=crop&w=400&h=300",
			Category:    "Food",
			Price:       79900,
			Duration:    180,
			Rating:      "4.9",
			ReviewCount: 87,
			IsActive:    true,
		},
	}

	timeSlots := []models.TimeSlot{
		{ID: 1, ExperienceID: 1, Name: "Morning", StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
		{ID: 2, ExperienceID: 1, Name: "Afternoon", StartTime: "02:00", EndTime: "04:00", IsAvailable: true},
		{ID: 3, ExperienceID: 1, Name: "Evening", StartTime: "05:00", EndTime: "07:00", IsAvailable: true},
		{ID: 4, ExperienceID: 1, Name: "Night", StartTime: "07:30", EndTime: "09:30", IsAvailable: true},
		{ID: 5, ExperienceID: 2, Name: "Morning", StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		{ID: 6, ExperienceID: 2, Name: "Evening", StartTime: "05:00", EndTime: "08:00", IsAvailable: true},
	}

	packages := []models.Package{
		{ID: 1, ExperienceID: 1, Name: "Single Session", Description: "One-time experience", Sessions: 1, Price: 59900, Discount: 0},
		{ID: 2, ExperienceID: 1, Name: "3 Sessions", Description: "Save 10%", Sessions: 3, Price: 161730, Discount: 10},
		{ID: 3, ExperienceID: 2, Name: "Single Session", Description: "One-time experience", Sessions: 1, Price: 79900, Discount: 0},
	}

	for i := range experiences {
		if err := s.CreateExperience(ctx, &experiences[i]); err != nil {
			return err
		}
	}
	for i := range timeSlots {
		if err := s.CreateTimeSlot(ctx, &timeSlots[i]); err != nil {
			return err
		}
	}
	for i := range packages {
		if err := s.CreatePackage(ctx, &packages[i]); err != nil {
			return err
		}
	}
	return nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farellandr/lokly/internal/helpers"
	"github.com/farellandr/lokly/internal/middleware"
	"github.com/farellandr/lokly/internal/models"
	"github.com/farellandr/lokly/internal/storage"
)

type CreateBookingRequest struct {
	ExperienceID  uint   `json:"experienceId" binding:"required"`
	PackageID     *uint  `json:"packageId"`
	TimeSlotID    uint   `json:"timeSlotId" binding:"required"`
	SelectedDate  string `json:"selectedDate" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=upi card"`
	TotalAmount   int    `json:"totalAmount" binding:"required,gt=0"`
}

// CreateBooking validates that the submitted time slot and package belong to
// the submitted experience, then persists the booking. The submitted total
// is stored as-is; no capacity check is made, so overlapping bookings for
// the same slot and date all succeed.
func CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	if _, err := store.GetExperience(c.Request.Context(), req.ExperienceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Experience does not exist.")
			return
		}
		logrus.WithError(err).Error("create booking: experience lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}

	slot, err := store.GetTimeSlot(c.Request.Context(), req.TimeSlotID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Time slot does not exist.")
			return
		}
		logrus.WithError(err).Error("create booking: time slot lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}
	if slot.ExperienceID != req.ExperienceID {
		helpers.RespondWithError(c, http.StatusBadRequest, "Time slot does not belong to this experience.")
		return
	}

	if req.PackageID != nil {
		pkg, err := store.GetPackage(c.Request.Context(), *req.PackageID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				helpers.RespondWithError(c, http.StatusBadRequest, "Package does not exist.")
				return
			}
			logrus.WithError(err).Error("create booking: package lookup failed")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
			return
		}
		if pkg.ExperienceID != req.ExperienceID {
			helpers.RespondWithError(c, http.StatusBadRequest, "Package does not belong to this experience.")
			return
		}
	}

	booking := models.Booking{
		ExperienceID:  req.ExperienceID,
		PackageID:     req.PackageID,
		TimeSlotID:    req.TimeSlotID,
		SelectedDate:  req.SelectedDate,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   req.TotalAmount,
	}
	if sess := middleware.GetSession(c); sess != nil {
		booking.UserID = sess.UserID
	}

	if err := store.CreateBooking(c.Request.Context(), &booking); err != nil {
		logrus.WithError(err).Error("create booking failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking looks a booking up by its generated reference, not the numeric
// row ID.
func GetBooking(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	booking, err := store.GetBookingByReference(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Booking not found.")
			return
		}
		logrus.WithError(err).Error("get booking failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving booking.")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func ListBookingsByEmail(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	bookings, err := store.ListBookingsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		logrus.WithError(err).Error("list bookings by email failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func MyBookings(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required.")
		return
	}

	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	bookings, err := store.ListBookingsByUser(c.Request.Context(), sess.UserID)
	if err != nil {
		logrus.WithError(err).Error("list bookings by user failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farellandr/lokly/internal/helpers"
	"github.com/farellandr/lokly/internal/middleware"
	"github.com/farellandr/lokly/internal/storage"
)

func ListExperiences(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	experiences, err := store.ListExperiences(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list experiences failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving experiences.")
		return
	}

	c.JSON(http.StatusOK, experiences)
}

// SearchExperiences filters by category when given, otherwise by free-text
// query, otherwise falls back to the full active list.
func SearchExperiences(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	query := c.Query("q")
	category := c.Query("category")

	var (
		experiences interface{}
		err         error
	)
	switch {
	case category != "":
		experiences, err = store.ListExperiencesByCategory(c.Request.Context(), category)
	case query != "":
		experiences, err = store.SearchExperiences(c.Request.Context(), query)
	default:
		experiences, err = store.ListExperiences(c.Request.Context())
	}
	if err != nil {
		logrus.WithError(err).Error("search experiences failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching experiences.")
		return
	}

	c.JSON(http.StatusOK, experiences)
}

func GetExperience(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	id, err := helpers.UintParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid experience ID.")
		return
	}

	experience, err := store.GetExperience(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Experience not found.")
			return
		}
		logrus.WithError(err).Error("get experience failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving experience.")
		return
	}

	c.JSON(http.StatusOK, experience)
}

func ListTimeSlots(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	experienceID, err := helpers.UintParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid experience ID.")
		return
	}

	slots, err := store.ListTimeSlots(c.Request.Context(), experienceID)
	if err != nil {
		logrus.WithError(err).Error("list time slots failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving time slots.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func ListPackages(c *gin.Context) {
	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	experienceID, err := helpers.UintParam(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid experience ID.")
		return
	}

	packages, err := store.ListPackages(c.Request.Context(), experienceID)
	if err != nil {
		logrus.WithError(err).Error("list packages failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving packages.")
		return
	}

	c.JSON(http.StatusOK, packages)
}

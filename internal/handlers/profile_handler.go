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

// Me returns the profile of the session user, read fresh from storage so
// profile edits made elsewhere are reflected.
func Me(c *gin.Context) {
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

	user, err := store.GetUserByID(c.Request.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		logrus.WithError(err).Error("me: user lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user.")
		return
	}

	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/farellandr/lokly/internal/helpers"
	"github.com/farellandr/lokly/internal/middleware"
	"github.com/farellandr/lokly/internal/models"
	"github.com/farellandr/lokly/internal/session"
	"github.com/farellandr/lokly/internal/storage"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	if _, err := store.GetUserByUsername(c.Request.Context(), req.Username); err == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Username is already taken.")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		logrus.WithError(err).Error("signup: username lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	if _, err := store.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email is already registered.")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		logrus.WithError(err).Error("signup: email lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Location:     req.Location,
	}

	if err := store.CreateUser(c.Request.Context(), &user); err != nil {
		logrus.WithError(err).Error("signup: create user failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user":    user,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	store := middleware.GetStorage(c)
	if store == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Storage not configured.")
		return
	}

	user, err := store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		logrus.WithError(err).Error("login: user lookup failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	sessions := middleware.GetSessionStore(c)
	if sessions == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session store not configured.")
		return
	}

	sess, err := sessions.Create(c.Request.Context(), user)
	if err != nil {
		logrus.WithError(err).Error("login: session create failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	setSessionCookie(c, sess.Token, int(session.TTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully.",
		"user":    sess.User,
	})
}

func Logout(c *gin.Context) {
	sessions := middleware.GetSessionStore(c)
	if sessions == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Session store not configured.")
		return
	}

	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := sessions.Delete(c.Request.Context(), token); err != nil {
			logrus.WithError(err).Error("logout: session delete failed")
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to log out.")
			return
		}
	}

	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farellandr/lokly/internal/helpers"
	"github.com/farellandr/lokly/internal/session"
)

// SessionMiddleware makes the session store available to handlers and, when
// the request carries a valid session cookie, attaches the authenticated
// identity to the request context. It never rejects; RequireAuth does.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session_store", store)

		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logrus.WithError(err).Error("session lookup failed")
			}
			c.Next()
			return
		}

		c.Set("session", sess)
		c.Set("user_id", sess.UserID)
		c.Next()
	}
}

// RequireAuth guards routes that need a logged-in user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSessionStore(c *gin.Context) session.Store {
	store, exists := c.Get("session_store")
	if !exists {
		return nil
	}
	return store.(session.Store)
}

// GetSession returns the authenticated session, or nil for guests.
func GetSession(c *gin.Context) *session.Session {
	sess, exists := c.Get("session")
	if !exists {
		return nil
	}
	return sess.(*session.Session)
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore/internal/domain"
	"techstore/internal/session"
)

func loginHandler(sessions SessionManager) gin.HandlerFunc {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := sessions.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}

func registerHandler(sessions SessionManager) gin.HandlerFunc {
	type registerRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := sessions.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, session.ErrNameRequired),
				errors.Is(err, session.ErrEmailInvalid),
				errors.Is(err, session.ErrPasswordTooShort):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": sess})
	}
}

func logoutHandler(sessions SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}

func meHandler(sessions SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Current(c.Request.Context())
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}

func preferencesHandler(sessions SessionManager) gin.HandlerFunc {
	type preferencesRequest struct {
		Theme         *string `json:"theme"`
		Language      *string `json:"language"`
		Notifications *bool   `json:"notifications"`
	}
	return func(c *gin.Context) {
		var req preferencesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		var patch session.PreferencesPatch
		if req.Theme != nil {
			theme, err := domain.ParseTheme(*req.Theme)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.Theme = &theme
		}
		if req.Language != nil {
			lang, err := domain.ParseLanguage(*req.Language)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			patch.Language = &lang
		}
		patch.Notifications = req.Notifications

		sess, err := sessions.UpdatePreferences(c.Request.Context(), patch)
		if err != nil {
			if errors.Is(err, session.ErrNotLoggedIn) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}

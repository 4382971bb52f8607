package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore/internal/contact"
	"techstore/internal/domain"
	"techstore/internal/i18n"
)

func settingsHandler(svc SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"theme": svc.Theme(), "language": svc.Language()})
	}
}

func setThemeHandler(svc SettingsService) gin.HandlerFunc {
	type themeRequest struct {
		Theme string `json:"theme"`
	}
	return func(c *gin.Context) {
		var req themeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		theme, err := domain.ParseTheme(req.Theme)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetTheme(c.Request.Context(), theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": theme})
	}
}

func toggleThemeHandler(svc SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"theme": svc.ToggleTheme(c.Request.Context())})
	}
}

func setLanguageHandler(svc SettingsService) gin.HandlerFunc {
	type languageRequest struct {
		Language string `json:"language"`
	}
	return func(c *gin.Context) {
		var req languageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		lang, err := domain.ParseLanguage(req.Language)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetLanguage(c.Request.Context(), lang); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": lang})
	}
}

// translationsHandler serves the bundle for the requested language. Unknown
// languages fall back to English, mirroring the storefront.
func translationsHandler(c *gin.Context) {
	lang := domain.Language(c.Param("lang"))
	c.JSON(http.StatusOK, i18n.For(lang))
}

func contactHandler(svc ContactService) gin.HandlerFunc {
	type contactRequest struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		msg, err := svc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, contact.ErrNameRequired),
				errors.Is(err, contact.ErrEmailInvalid),
				errors.Is(err, contact.ErrMessageRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": msg})
	}
}

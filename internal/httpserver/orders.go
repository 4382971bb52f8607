package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techstore/internal/checkout"
)

func checkoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.PlaceOrder(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrLoginRequired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrCheckoutInProgress):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func ordersHandler(svc CheckoutService, sessions SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Current(c.Request.Context())
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": svc.History(sess.UserID)})
	}
}

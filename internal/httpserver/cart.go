package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartengine "techstore/internal/cart"
	"techstore/internal/domain"
)

type cartResponse struct {
	Lines         []domain.CartLine `json:"lines"`
	SubtotalCents int64             `json:"subtotalCents"`
	TaxCents      int64             `json:"taxCents"`
	TotalCents    int64             `json:"totalCents"`
	TotalItems    int               `json:"totalItems"`
}

func cartState(cart CartEngine) cartResponse {
	return cartResponse{
		Lines:         cart.Lines(),
		SubtotalCents: cart.Subtotal(),
		TaxCents:      cart.Tax(),
		TotalCents:    cart.Total(),
		TotalItems:    cart.TotalItems(),
	}
}

func cartHandler(cart CartEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartState(cart))
	}
}

func cartAddHandler(cart CartEngine, catalog ProductCatalog) gin.HandlerFunc {
	type addRequest struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	return func(c *gin.Context) {
		var req addRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		p, err := catalog.GetByID(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if err := cart.Add(c.Request.Context(), *p, req.Quantity); err != nil {
			if errors.Is(err, cartengine.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, cartState(cart))
	}
}

func cartUpdateHandler(cart CartEngine) gin.HandlerFunc {
	type updateRequest struct {
		Quantity int `json:"quantity"`
	}
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		cart.UpdateQuantity(c.Request.Context(), id, req.Quantity)
		c.JSON(http.StatusOK, cartState(cart))
	}
}

func cartRemoveHandler(cart CartEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		cart.Remove(c.Request.Context(), id)
		c.JSON(http.StatusOK, cartState(cart))
	}
}

func cartClearHandler(cart CartEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear(c.Request.Context())
		c.JSON(http.StatusOK, cartState(cart))
	}
}

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"techstore/internal/catalog"
	"techstore/internal/domain"
)

const (
	defaultPageSize = 9
	maxPageSize     = 100
)

type productListResponse struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// listProductsHandler answers the browse query. A non-blank q searches the
// whole catalog and ignores the category, matching the storefront where
// searching clears the active category filter.
func listProductsHandler(cat ProductCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := domain.ParseCategory(c.Query("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		criterion := catalog.SortCriterion(c.Query("sort"))
		switch criterion {
		case "", catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortRating, catalog.SortName:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort criterion"})
			return
		}

		page := intQuery(c, "page", 1)
		if page < 1 {
			page = 1
		}
		pageSize := intQuery(c, "pageSize", defaultPageSize)
		if pageSize < 1 {
			pageSize = defaultPageSize
		}
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		var products []domain.Product
		if q := c.Query("q"); strings.TrimSpace(q) != "" {
			products = cat.Search(q)
		} else {
			products = cat.FilterByCategory(category)
		}
		products = catalog.Sort(products, criterion)

		total := len(products)
		totalPages := (total + pageSize - 1) / pageSize

		c.JSON(http.StatusOK, productListResponse{
			Products:   catalog.Paginate(products, pageSize, page),
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		})
	}
}

func getProductHandler(cat ProductCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		p, err := cat.GetByID(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

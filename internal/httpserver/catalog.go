package httpserver

import (
	"net/http"
	"strconv"

	"agrimart/internal/domain"
	catalogsvc "agrimart/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func categoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.Categories})
}

// browseHandler serves the shopper-facing category pages:
// GET /products?category=...&q=...&priceMin=...&priceMax=...&sort=...
// Price bounds are given in cents.
func browseHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalogsvc.Criteria{
			Query:   c.Query("q"),
			SortKey: c.DefaultQuery("sort", catalogsvc.SortName),
		}
		if v := c.Query("priceMin"); v != "" {
			min, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "priceMin must be an integer"})
				return
			}
			criteria.PriceMinCents = &min
		}
		if v := c.Query("priceMax"); v != "" {
			max, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "priceMax must be an integer"})
				return
			}
			criteria.PriceMaxCents = &max
		}

		products, err := svc.Browse(c.Request.Context(), c.Query("category"), criteria)
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listOwnProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListMine(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := svc.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := svc.Update(c.Request.Context(), currentUser(c), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

package httpserver

import (
	"net/http"

	"agrimart/internal/domain"
	"github.com/gin-gonic/gin"
)

type toggleWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func listWishlistHandler(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), currentUser(c))
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

func toggleWishlistHandler(svc WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		added, err := svc.Toggle(c.Request.Context(), currentUser(c), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"added": added})
	}
}

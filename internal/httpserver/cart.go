package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func viewCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.View(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		if err := svc.Add(c.Request.Context(), currentUser(c), req.ProductID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

func setCartQuantityHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.SetQuantity(c.Request.Context(), currentUser(c), c.Param("productId"), req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func removeFromCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), currentUser(c), c.Param("productId")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

package httpserver

import (
	"net/http"

	"agrimart/internal/domain"
	ordersvc "agrimart/internal/service/order"
	"github.com/gin-gonic/gin"
)

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForShopper(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func placeOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details ordersvc.Details
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		orders, err := svc.Place(c.Request.Context(), currentUser(c), details)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orders": orders})
	}
}

func placeOrderOnlineHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details ordersvc.Details
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		orders, err := svc.PlaceOnline(c.Request.Context(), currentUser(c), details)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"orders": orders})
	}
}

func cancelOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listAdminOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForAdmin(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func completeOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkCompleted(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func statsHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

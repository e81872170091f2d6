package httpserver

import (
	"net/http"

	usersvc "agrimart/internal/service/user"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func loginHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		u, access, refresh, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":         u,
			"accessToken":  access,
			"refreshToken": refresh,
			"expiresIn":    svc.AccessTTLSeconds(),
		})
	}
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

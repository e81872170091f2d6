package httpserver

import (
	"errors"
	"net/http"

	"agrimart/internal/domain"
	"agrimart/internal/payment"
	usersvc "agrimart/internal/service/user"
	"github.com/gin-gonic/gin"
)

// respondError maps domain failures onto HTTP statuses. Anything
// unmapped is treated as a transient backend failure the client may
// retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingDetails),
		errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usersvc.ErrInvalidCredentials), errors.Is(err, usersvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyInCart),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable, please retry"})
	}
}

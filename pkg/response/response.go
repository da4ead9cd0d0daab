package response

import (
	"log"
	"net/http"

	"anoa.com/ruangkelas/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the authenticated user ID from the context. IDs are
// opaque strings here; seed accounts use readable ids, generated ones are
// UUIDs, so no format is assumed.
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// Package handler contains the HTTP surface of the application: thin gin
// handlers that validate input, call the store, and shape responses. All
// domain behavior lives in the store; handlers only translate.
package handler

import (
	"net/http"

	"anoa.com/ruangkelas/pkg/validator"
	"github.com/gin-gonic/gin"
)

// bindError answers a failed request binding with the formatted,
// user-facing validation message.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
}

package handler

import (
	"net/http"
	"time"

	"anoa.com/ruangkelas/internal/middleware"
	"anoa.com/ruangkelas/internal/store"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store    *store.Store
	auth     *middleware.AuthMiddleware
	tokenTTL time.Duration
}

func NewAuthHandler(st *store.Store, auth *middleware.AuthMiddleware, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		store:    st,
		auth:     auth,
		tokenTTL: tokenTTL,
	}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	user, ok := h.store.Login(input.Username, input.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username atau password salah"})
		return
	}

	token, err := h.auth.SignToken(user, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int64(h.tokenTTL.Seconds()),
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
}

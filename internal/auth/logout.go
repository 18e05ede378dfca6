package auth

import (
	"net/http"

	"github.com/gabrielhrms/habitflow-lambda/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, AccessTokenCookie, "/")
	clearCookie(w, RefreshTokenCookie, "/auth")

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

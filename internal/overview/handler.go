package overview

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/config"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// Get refreshes the caller's aggregate and returns the resulting
// snapshot. A failed refresh still answers 200 with the last-ready data
// and an error status, so clients can keep showing stale-but-available
// state with a non-blocking indicator.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	agg := h.manager.ForUser(uuid.MustParse(claims.UserID))
	if err := agg.Refresh(r.Context()); err != nil {
		log.WithError(err).Warn("Overview refresh failed, serving last-known snapshot")
	}

	config.JSON(w, http.StatusOK, agg.Snapshot())
}

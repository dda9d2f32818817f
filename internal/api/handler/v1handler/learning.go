package v1handler

import (
	"net/http"
	"recon/internal/learning"
)

type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

type PasswordStrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// Catalog returns the learning content without quiz answers.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.deps.Catalog.Content())
}

// PasswordStrength scores a password. The password is neither logged nor stored.
func (h *Handler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req PasswordStrengthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	score, label := learning.EstimatePasswordStrength(req.Password)
	writeJSON(r.Context(), w, http.StatusOK, PasswordStrengthResponse{Score: score, Label: label})
}

package v1handler

import (
	"net/http"
	"recon/internal/learning"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type SubmitQuizRequest struct {
	Answers map[string]int `json:"answers"`
}

type SubmitQuizResponse struct {
	Score    int              `json:"score"`
	Progress *domain.Progress `json:"progress"`
}

type GuessPhishingResponse struct {
	Phishing    bool             `json:"phishing"`
	Explanation string           `json:"explanation"`
	Progress    *domain.Progress `json:"progress"`
}

// GetProgress returns the caller's learning progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Progress.Get(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not get progress"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}

// ResetProgress clears the caller's learning progress.
func (h *Handler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Progress.Reset(r.Context(), GetUserIDFromContext(r.Context())); err != nil {
		h.WriteError(w, r, wrapf(err, "could not reset progress"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteLesson marks a lesson as completed.
func (h *Handler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Progress.CompleteLesson(r.Context(),
		GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "lessonID"))
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not complete lesson"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}

// SubmitQuiz grades the submitted answers and records the score.
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req SubmitQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}

	p, score, err := h.deps.Progress.SubmitQuiz(r.Context(),
		GetUserIDFromContext(r.Context()),
		chi.URLParam(r, "quizID"),
		req.Answers)
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not submit quiz"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, SubmitQuizResponse{Score: score, Progress: p})
}

// GuessPhishing records the caller's pick in the phishing simulation.
func (h *Handler) GuessPhishing(w http.ResponseWriter, r *http.Request) {
	emailID, err := strconv.Atoi(chi.URLParam(r, "emailID"))
	if err != nil {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "emailID must be an integer"))

		return
	}

	p, phishing, err := h.deps.Progress.GuessPhishing(r.Context(), GetUserIDFromContext(r.Context()), emailID)
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not record phishing guess"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, GuessPhishingResponse{
		Phishing:    phishing,
		Explanation: learning.PhishingExplanation(phishing),
		Progress:    p,
	})
}

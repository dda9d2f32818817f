package v1handler

import (
	"net/http"
)

type AnalyzeRequest struct {
	Email string `json:"email"`
}

// Analyze runs a reconnaissance lookup for the submitted email address. The
// address is passed on as submitted; the analyzer validates it.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.WriteError(w, r, err)

		return
	}
	if err := requireField("email", req.Email); err != nil {
		h.WriteError(w, r, err)

		return
	}

	dossier, err := h.deps.Analyzer.Analyze(r.Context(), req.Email)
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not analyze"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, dossier)
}

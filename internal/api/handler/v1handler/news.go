package v1handler

import (
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"strconv"
)

type NewsResponse struct {
	Items []domain.Article `json:"items"`
}

// LatestNews lists the newest cached news articles.
func (h *Handler) LatestNews(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseUint(raw, 10, 32)
		if err != nil || limit == 0 {
			h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer"))

			return
		}
	}

	articles, err := h.deps.Feed.Latest(r.Context(), uint(limit))
	if err != nil {
		h.WriteError(w, r, wrapf(err, "could not list news"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, NewsResponse{Items: articles})
}

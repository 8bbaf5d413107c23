package main

import (
	"errors"
	"net/http"
)

type ExecutePageParams struct {
	Message string
}

// Page renders the main page with the backend response as its message.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	result, err := h.loader.Load(r.Context())
	if err != nil {
		if r.Context().Err() != nil && errors.Is(err, r.Context().Err()) {
			loggerFromContext(r.Context(), h.log).Info("page render canceled", "error", err)
			return
		}
		h.serveServerError(w, r, err)
		return
	}

	page, err := h.execute("page.html.tmpl", &ExecutePageParams{Message: result.Message})
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

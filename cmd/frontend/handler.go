package main

import (
	"bytes"
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/k11v/gradewise/internal/pageload"
)

// PageLoader loads the data of the main page.
type PageLoader interface {
	Load(ctx context.Context) (*pageload.Result, error)
}

type ExecuteErrorParams struct {
	StatusCode int
}

type Handler struct {
	loader PageLoader
	log    *slog.Logger
	tmpl   *template.Template

	staticHandler http.Handler

	notFoundPage            []byte
	internalServerErrorPage []byte
}

func NewHandler(loader PageLoader, fsys fs.FS, log *slog.Logger) (*Handler, error) {
	funcs := template.FuncMap{
		"statusText": http.StatusText,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "*.html.tmpl")
	if err != nil {
		return nil, err
	}

	staticFS, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, err
	}

	h := &Handler{
		loader:        loader,
		log:           log.With("component", "handler"),
		tmpl:          tmpl,
		staticHandler: http.StripPrefix("/static/", http.FileServerFS(staticFS)),
	}

	h.notFoundPage, err = h.execute("error.html.tmpl", &ExecuteErrorParams{StatusCode: http.StatusNotFound})
	if err != nil {
		return nil, err
	}
	h.internalServerErrorPage, err = h.execute("error.html.tmpl", &ExecuteErrorParams{StatusCode: http.StatusInternalServerError})
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (h *Handler) Routes() http.Handler {
	mux := &http.ServeMux{}

	mux.HandleFunc("GET /{$}", h.Page)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /static/", h.StaticFile)
	mux.HandleFunc("GET /", h.NotFoundPage)

	return mux
}

func (h *Handler) execute(name string, data any) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := h.tmpl.ExecuteTemplate(buf, name, data)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) StaticFile(w http.ResponseWriter, r *http.Request) {
	h.staticHandler.ServeHTTP(w, r)
}

func (h *Handler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(h.notFoundPage)
}

func (h *Handler) serveServerError(w http.ResponseWriter, r *http.Request, err error) {
	loggerFromContext(r.Context(), h.log).Error("server error", "error", err)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(h.internalServerErrorPage)
}

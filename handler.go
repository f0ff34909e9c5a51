package main

import (
	"context"
	"embed"
	"net/http"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/degennews/web/articles"
	"github.com/degennews/web/config"
	"github.com/degennews/web/logger"
	"github.com/degennews/web/notifier"
)

//go:embed static
var staticFS embed.FS

type Handler struct {
	config        *config.Config
	formDecoder   *form.Decoder
	formValidator *validator.Validate
	repo          *articles.Repository
	slacknotifier *notifier.Slack
	log           logger.Logger
}

func (hnd *Handler) StaticFiles() http.Handler {
	if hnd.config.App.Env == config.Local {
		hnd.log.Info("serving static files from local directory")
		return http.StripPrefix("/static", http.FileServer(http.Dir("static")))
	}

	hnd.log.Info("serving static files from embedded FS")
	return http.StripPrefix("/", http.FileServer(http.FS(staticFS)))
}

func (hnd *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte{})
}

// navCategories fetches the category list for the header nav. Navigation
// is decoration: a fetch failure renders pages without category links
// rather than failing the request.
func (hnd *Handler) navCategories(ctx context.Context) []string {
	categories, err := hnd.repo.Categories(ctx)
	if err != nil {
		hnd.log.Warn("loading nav categories: %s", err.Error())
		return nil
	}
	return categories
}

package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/degennews/web/articles"
	"github.com/degennews/web/status"
	"github.com/degennews/web/templates/views"
	"github.com/degennews/web/utils"
)

func (hnd *Handler) HomeView(w http.ResponseWriter, r *http.Request) {
	all, err := hnd.repo.All(r.Context(), false)
	if err != nil {
		hnd.log.Error("loading articles for home page: %s", err.Error())
		utils.RenderStatus(w, r, http.StatusInternalServerError, views.ErrorPage(nil))
		return
	}

	utils.Render(w, r, views.Home(all, hnd.navCategories(r.Context())))
}

func (hnd *Handler) ArticleDetailsView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	article, err := hnd.repo.ByURL(r.Context(), slug, false)
	if errors.Is(err, status.ErrArticleNotFound) {
		utils.RenderStatus(w, r, http.StatusNotFound, views.NotFound(hnd.navCategories(r.Context())))
		return
	}
	if err != nil {
		hnd.log.Error("loading article %q: %s", slug, err.Error())
		utils.RenderStatus(w, r, http.StatusInternalServerError, views.ErrorPage(nil))
		return
	}

	// Some rows repeat the preview at the top of the body; drop it so the
	// detail page doesn't show the summary twice.
	body := articles.StripPreviewArtifact(article.Content, article.Preview)
	utils.Render(w, r, views.ArticleDetail(article, body, hnd.navCategories(r.Context())))
}

func (hnd *Handler) CategoryView(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "category")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	name := utils.TitleCase(strings.ReplaceAll(decoded, "-", " "))

	matched, err := hnd.repo.ByCategory(r.Context(), name, false)
	if err != nil {
		hnd.log.Error("loading category %q: %s", name, err.Error())
		utils.RenderStatus(w, r, http.StatusInternalServerError, views.ErrorPage(nil))
		return
	}
	if len(matched) == 0 {
		utils.RenderStatus(w, r, http.StatusNotFound, views.NotFound(hnd.navCategories(r.Context())))
		return
	}

	utils.Render(w, r, views.Category(name, matched, hnd.navCategories(r.Context())))
}

func (hnd *Handler) NotFoundView(w http.ResponseWriter, r *http.Request) {
	utils.RenderStatus(w, r, http.StatusNotFound, views.NotFound(hnd.navCategories(r.Context())))
}

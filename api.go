package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/degennews/web/status"
	"github.com/degennews/web/utils"
)

const articleCacheControl = "s-maxage=86400, stale-while-revalidate"

// ArticlesAPI serves the article set as JSON. A url query param returns a
// single article, a category param filters, otherwise all articles.
func (hnd *Handler) ArticlesAPI(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	if slug := query.Get("url"); slug != "" {
		article, err := hnd.repo.ByURL(r.Context(), slug, false)
		if errors.Is(err, status.ErrArticleNotFound) {
			return status.ErrorNotFound(err)
		}
		if err != nil {
			return status.ErrorInternalServerError(status.ErrFetchFailed)
		}
		utils.WriteJSON(w, http.StatusOK, map[string]any{"article": article})
		return nil
	}

	var (
		result any
		err    error
	)
	if category := query.Get("category"); category != "" {
		result, err = hnd.repo.ByCategory(r.Context(), category, false)
	} else {
		result, err = hnd.repo.All(r.Context(), false)
	}
	if err != nil {
		hnd.log.Error("articles api: %s", err.Error())
		return status.ErrorInternalServerError(status.ErrFetchFailed)
	}

	w.Header().Set("Cache-Control", articleCacheControl)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"articles": result})
	return nil
}

func (hnd *Handler) CategoriesAPI(w http.ResponseWriter, r *http.Request) error {
	categories, err := hnd.repo.Categories(r.Context())
	if err != nil {
		hnd.log.Error("categories api: %s", err.Error())
		return status.ErrorInternalServerError(status.ErrFetchFailed)
	}

	w.Header().Set("Cache-Control", articleCacheControl)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
	return nil
}

type refreshForm struct {
	Code string `form:"code" validate:"required"`
}

// RefreshAPI forces a re-fetch from the spreadsheet. It is gated by a
// shared-secret code supplied as a form field.
func (hnd *Handler) RefreshAPI(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return status.WarningBadRequest(status.ErrParsingForm)
	}

	var payload refreshForm
	if err := hnd.formDecoder.Decode(&payload, r.PostForm); err != nil {
		return status.WarningBadRequest(status.ErrDecodingForm)
	}
	if err := hnd.formValidator.Struct(payload); err != nil {
		return status.WarningBadRequest(status.ErrInvalidForm)
	}

	if payload.Code != hnd.config.App.RefreshCode {
		return status.WarningUnauthorized(status.WarnInvalidRefreshCode)
	}

	if _, err := hnd.repo.All(r.Context(), true); err != nil {
		hnd.log.Error("forced refresh failed: %s", err.Error())
		if alertErr := hnd.slacknotifier.Alert("forced article refresh failed: " + err.Error()); alertErr != nil {
			hnd.log.Warn("slack alert failed: %s", alertErr.Error())
		}
		return status.ErrorInternalServerError(status.ErrFetchFailed)
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message":   "Articles refreshed successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// RevalidateAPI clears the repository cache so the next read re-fetches.
// It is gated by a secret query parameter.
func (hnd *Handler) RevalidateAPI(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Query().Get("secret") != hnd.config.App.RevalidationSecret {
		return status.WarningUnauthorized(status.WarnInvalidRevalidationSecret)
	}

	hnd.repo.ClearCache()

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Cache revalidated successfully",
		"revalidatedAt": time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

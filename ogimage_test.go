package main

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func TestOGImageAPI(t *testing.T) {
	hnd, _ := newTestHandler(testRows())

	rec := doRequest(hnd, httptest.NewRequest(http.MethodGet, "/api/og?title=Bridge+Exploit+Drains+%242M", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, ogWidth, cfg.Width)
	assert.Equal(t, ogHeight, cfg.Height)
}

func TestOGImageAPIDefaultTitle(t *testing.T) {
	hnd, _ := newTestHandler(testRows())

	rec := doRequest(hnd, httptest.NewRequest(http.MethodGet, "/api/og", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestWrapTextSingleLineFits(t *testing.T) {
	face, err := loadFace(gobold.TTF, 50)
	require.NoError(t, err)

	lines := wrapText("short title", face, ogWidth-160)
	assert.Equal(t, []string{"short title"}, lines)
}

func TestWrapTextLongTitleWraps(t *testing.T) {
	face, err := loadFace(gobold.TTF, 50)
	require.NoError(t, err)

	lines := wrapText("a considerably longer headline that cannot possibly fit on a single rendered line", face, 400)
	assert.Greater(t, len(lines), 1)
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitWords("a  b\tc"))
	assert.Nil(t, splitWords("   "))
}

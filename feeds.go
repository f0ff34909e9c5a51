package main

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/degennews/web/articles"
)

const (
	siteName        = "degenNews"
	siteDescription = "Latest crypto security news, trading insights, whale watching strategies, and market analysis for degens."

	rssArticleLimit  = 20
	jsonArticleLimit = 50
)

func (hnd *Handler) articleURL(a articles.Article) string {
	return hnd.config.App.BaseURL + "/articles/" + a.Slug()
}

// categoryPathSlug turns a display category into its URL path form,
// matching the links the header nav emits. Only whitespace becomes a
// dash; "&" stays, so the category page can map the slug back to the
// display name.
func categoryPathSlug(category string) string {
	return strings.Join(strings.Fields(strings.ToLower(category)), "-")
}

// RSSView serves the RSS 2.0 feed with the latest articles, full content
// included as content:encoded.
func (hnd *Handler) RSSView(w http.ResponseWriter, r *http.Request) {
	all, err := hnd.repo.All(r.Context(), false)
	if err != nil {
		hnd.log.Error("rss feed: %s", err.Error())
		http.Error(w, "failed to generate feed", http.StatusInternalServerError)
		return
	}
	if len(all) > rssArticleLimit {
		all = all[:rssArticleLimit]
	}

	baseURL := hnd.config.App.BaseURL
	rss := &feeds.RssFeed{
		Title:         siteName + " - Crypto Security News",
		Link:          baseURL + "/",
		Description:   siteDescription,
		Language:      "en-us",
		LastBuildDate: time.Now().UTC().Format(time.RFC1123Z),
		Ttl:           60,
		Image: &feeds.RssImage{
			Url:    baseURL + "/static/logo.png",
			Title:  siteName,
			Link:   baseURL + "/",
			Width:  144,
			Height: 144,
		},
	}

	now := time.Now()
	for _, a := range all {
		link := hnd.articleURL(a)
		rss.Items = append(rss.Items, &feeds.RssItem{
			Title:       a.Title,
			Link:        link,
			Description: a.Preview,
			Guid:        &feeds.RssGuid{Id: link, IsPermaLink: "true"},
			PubDate:     articleTime(a, now).Format(time.RFC1123Z),
			Category:    a.Category,
			Content:     &feeds.RssContent{Content: a.Content},
			Author:      siteName,
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "s-maxage=3600, stale-while-revalidate")
	if err := feeds.WriteXML(rss, w); err != nil {
		hnd.log.Error("writing rss feed: %s", err.Error())
	}
}

// articleTime parses the article date for feed timestamps.
func articleTime(a articles.Article, fallback time.Time) time.Time {
	layouts := []string{"2006-01-02", time.RFC3339}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return t
		}
	}
	return fallback
}

// Sitemap XML with the Google News extension. gorilla/feeds has no sitemap
// writer, and no library in reach emits news: and xhtml: extensions, so
// this stays on typed encoding/xml structs.
type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXhtml string       `xml:"xmlns:xhtml,attr"`
	XmlnsNews  string       `xml:"xmlns:news,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	News       *sitemapNews  `xml:"news:news,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapNews struct {
	Publication     sitemapPublication `xml:"news:publication"`
	PublicationDate string             `xml:"news:publication_date"`
	Title           string             `xml:"news:title"`
}

type sitemapPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

func alternates(href string) []sitemapLink {
	return []sitemapLink{
		{Rel: "alternate", Hreflang: "en", Href: href},
		{Rel: "alternate", Hreflang: "x-default", Href: href},
	}
}

func (hnd *Handler) SitemapView(w http.ResponseWriter, r *http.Request) {
	all, err := hnd.repo.All(r.Context(), false)
	if err != nil {
		hnd.log.Error("sitemap: %s", err.Error())
		http.Error(w, "failed to generate sitemap", http.StatusInternalServerError)
		return
	}
	categories, _ := hnd.repo.Categories(r.Context())

	baseURL := hnd.config.App.BaseURL
	now := time.Now().UTC()
	nowStamp := now.Format(time.RFC3339)

	set := sitemapURLSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXhtml: "http://www.w3.org/1999/xhtml",
		XmlnsNews:  "http://www.google.com/schemas/sitemap-news/0.9",
	}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:        baseURL + "/",
		LastMod:    nowStamp,
		ChangeFreq: "daily",
		Priority:   "1.0",
		Alternates: alternates(baseURL + "/"),
	})

	for _, c := range categories {
		loc := baseURL + "/categories/" + url.PathEscape(categoryPathSlug(c))
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    nowStamp,
			ChangeFreq: "weekly",
			Priority:   "0.7",
			Alternates: alternates(loc),
		})
	}

	for _, a := range all {
		loc := hnd.articleURL(a)
		published := articleTime(a, now).UTC().Format(time.RFC3339)
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    published,
			ChangeFreq: "monthly",
			Priority:   "0.9",
			News: &sitemapNews{
				Publication:     sitemapPublication{Name: siteName, Language: "en"},
				PublicationDate: published,
				Title:           a.Title,
			},
			Alternates: alternates(loc),
		})
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "s-maxage=86400, stale-while-revalidate")
	w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		hnd.log.Error("writing sitemap: %s", err.Error())
	}
}

package main

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/degennews/web/utils"
)

// The posts.json shapes mirror what LLM crawlers and downstream consumers
// already expect from the site.
type postAuthor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type postImage struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type postAIContext struct {
	Topic    string `json:"topic"`
	Focus    string `json:"focus"`
	Audience string `json:"audience"`
	Type     string `json:"type"`
}

type post struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     string        `json:"content"`
	URL         string        `json:"url"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	PublishedAt string        `json:"publishedAt"`
	UpdatedAt   string        `json:"updatedAt"`
	Author      postAuthor    `json:"author"`
	Images      []postImage   `json:"images"`
	Summary     string        `json:"summary"`
	Keywords    string        `json:"keywords"`
	ReadingTime int           `json:"readingTime"`
	WordCount   int           `json:"wordCount"`
	Language    string        `json:"language"`
	AIContext   postAIContext `json:"aiContext"`
}

type postsSiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Language    string `json:"language"`
	LastUpdated string `json:"lastUpdated"`
}

type postsMetadata struct {
	Total       int           `json:"total"`
	GeneratedAt string        `json:"generatedAt"`
	FeedURL     string        `json:"feedUrl"`
	RSSURL      string        `json:"rssUrl"`
	SitemapURL  string        `json:"sitemapUrl"`
	SiteInfo    postsSiteInfo `json:"siteInfo"`
}

type postsFeed struct {
	Posts    []post        `json:"posts"`
	Metadata postsMetadata `json:"metadata"`
}

// PostsJSONAPI serves a JSON feed of the latest articles with extra
// machine-consumer metadata.
func (hnd *Handler) PostsJSONAPI(w http.ResponseWriter, r *http.Request) {
	all, err := hnd.repo.All(r.Context(), false)
	if err != nil {
		hnd.log.Error("posts feed: %s", err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate posts feed"})
		return
	}
	if len(all) > jsonArticleLimit {
		all = all[:jsonArticleLimit]
	}

	baseURL := hnd.config.App.BaseURL
	posts := make([]post, 0, len(all))
	for _, a := range all {
		articleURL := hnd.articleURL(a)
		focus := a.Tags
		if len(focus) > 3 {
			focus = focus[:3]
		}
		posts = append(posts, post{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Preview,
			Content:     a.Content,
			URL:         articleURL,
			Category:    a.Category,
			Tags:        a.Tags,
			PublishedAt: a.Date,
			UpdatedAt:   a.Date,
			Author:      postAuthor{Name: siteName, URL: baseURL},
			Images: []postImage{{
				URL:    baseURL + "/api/og?title=" + url.QueryEscape(a.Title),
				Title:  a.Title,
				Width:  ogWidth,
				Height: ogHeight,
			}},
			Summary:     a.Preview,
			Keywords:    strings.Join(a.Tags, ", "),
			ReadingTime: (len(a.Content) + 199) / 200,
			WordCount:   len(a.Content),
			Language:    "en",
			AIContext: postAIContext{
				Topic:    a.Category,
				Focus:    strings.Join(focus, ", "),
				Audience: "crypto traders, security researchers, degens",
				Type:     "educational content, news analysis",
			},
		})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	feed := postsFeed{
		Posts: posts,
		Metadata: postsMetadata{
			Total:       len(posts),
			GeneratedAt: now,
			FeedURL:     baseURL + "/api/posts.json",
			RSSURL:      baseURL + "/rss.xml",
			SitemapURL:  baseURL + "/sitemap.xml",
			SiteInfo: postsSiteInfo{
				Name:        siteName,
				Description: siteDescription,
				URL:         baseURL,
				Language:    "en",
				LastUpdated: now,
			},
		},
	}

	w.Header().Set("Cache-Control", "s-maxage=1800, stale-while-revalidate")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET")
	utils.WriteJSON(w, http.StatusOK, feed)
}

// RobotsView serves robots.txt from the embedded static files.
func (hnd *Handler) RobotsView(w http.ResponseWriter, r *http.Request) {
	content, err := staticFS.ReadFile("static/robots.txt")
	if err != nil {
		hnd.log.Error("reading robots.txt: %s", err.Error())
		http.Error(w, "error loading robots.txt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "public, max-age=86400, s-maxage=86400")
	w.Write(content)
}

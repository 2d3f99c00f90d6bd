package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
)

const rssItemLimit = 50

// RSS serves the most recently uploaded videos as an RSS feed.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.LatestPostLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Latest videos",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of newly uploaded videos",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	posts, err := c.Lister.ListLatestPosts(ctx, rssItemLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.ID,
			IsPermaLink: "false",
			Title:       rssTitle(p),
			Link:        &feeds.Link{Href: p.VideoURL},
			Description: p.Description,
			Author:      &feeds.Author{Name: p.Username},
			Enclosure:   &feeds.Enclosure{Url: p.VideoURL, Type: "video/mp4", Length: "0"},
			Created:     p.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func rssTitle(p domain.FeedCandidate) string {
	const maxLen = 80
	title := p.Description
	if runes := []rune(title); len(runes) > maxLen {
		title = string(runes[:maxLen]) + "…"
	}
	if title == "" {
		title = "Untitled video"
	}
	if p.Username != "" {
		title = p.Username + ": " + title
	}
	return title
}
